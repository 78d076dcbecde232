// Package i18n resolves user-facing strings through a key→{en,hi,mr}
// lookup. The core always serializes roles and statuses as stable keys;
// only display strings pass through the bundle.
package i18n

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Language is a supported display language.
type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"
	Marathi Language = "mr"
)

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	switch l {
	case English, Hindi, Marathi:
		return true
	}
	return false
}

// Bundle holds the translation table.
type Bundle struct {
	entries map[string]map[Language]string
}

// defaultEntries seed the bundle so the app works without a translations
// file. A YAML file can add to or override them.
var defaultEntries = map[string]map[Language]string{
	"orderSuccess": {
		English: "Order placed successfully",
		Hindi:   "ऑर्डर सफलतापूर्वक दिया गया",
		Marathi: "ऑर्डर यशस्वीरित्या दिली गेली",
	},
	"emptyCart": {
		English: "Your cart is empty",
		Hindi:   "आपकी टोकरी खाली है",
		Marathi: "तुमची टोपली रिकामी आहे",
	},
	"codeSent": {
		English: "A login code has been sent to your mobile number",
		Hindi:   "आपके मोबाइल नंबर पर लॉगिन कोड भेजा गया है",
		Marathi: "तुमच्या मोबाईल क्रमांकावर लॉगिन कोड पाठवला आहे",
	},
	"resetEmailSent": {
		English: "Password reset instructions have been sent",
		Hindi:   "पासवर्ड रीसेट निर्देश भेज दिए गए हैं",
		Marathi: "पासवर्ड रीसेट सूचना पाठवल्या आहेत",
	},
	"accessDenied": {
		English: "Access denied: authorized personnel only",
		Hindi:   "प्रवेश निषेध: केवल अधिकृत कर्मी",
		Marathi: "प्रवेश नाकारला: फक्त अधिकृत कर्मचारी",
	},
	"registrationPending": {
		English: "Registration received; awaiting admin approval",
		Hindi:   "पंजीकरण प्राप्त हुआ; व्यवस्थापक अनुमोदन की प्रतीक्षा है",
		Marathi: "नोंदणी प्राप्त झाली; प्रशासक मंजुरीच्या प्रतीक्षेत",
	},
}

// NewBundle returns a bundle seeded with the built-in translations.
// Keys are case-insensitive; viper lowercases them when loading a file,
// so the bundle stores and looks them up lowercased.
func NewBundle() *Bundle {
	entries := make(map[string]map[Language]string, len(defaultEntries))
	for key, langs := range defaultEntries {
		copied := make(map[Language]string, len(langs))
		for lang, text := range langs {
			copied[lang] = text
		}
		entries[strings.ToLower(key)] = copied
	}
	return &Bundle{entries: entries}
}

// LoadFile merges translations from a YAML file of the shape
//
//	key:
//	  en: ...
//	  hi: ...
//	  mr: ...
//
// File entries override the seeded defaults per language.
func (b *Bundle) LoadFile(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read translations file %s: %w", path, err)
	}
	for _, key := range v.AllKeys() {
		// viper flattens nested keys to "greeting.en"
		var name string
		var lang Language
		for _, l := range []Language{English, Hindi, Marathi} {
			suffix := "." + string(l)
			if len(key) > len(suffix) && key[len(key)-len(suffix):] == suffix {
				name = key[:len(key)-len(suffix)]
				lang = l
				break
			}
		}
		if name == "" {
			continue
		}
		if b.entries[name] == nil {
			b.entries[name] = make(map[Language]string)
		}
		b.entries[name][lang] = v.GetString(key)
	}
	return nil
}

// T resolves key in the requested language, falling back to English and
// then to the key itself so missing translations never break a response.
func (b *Bundle) T(key string, lang Language) string {
	langs, ok := b.entries[strings.ToLower(key)]
	if !ok {
		return key
	}
	if text, ok := langs[lang]; ok && text != "" {
		return text
	}
	if text, ok := langs[English]; ok && text != "" {
		return text
	}
	return key
}
