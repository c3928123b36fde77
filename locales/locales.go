// Package locales supplies the fixed locale catalog the harness renders.
// The catalog is an ordered set of BCP-47 identifiers; accessors hand out
// copies so the canonical slices stay immutable for the process lifetime.
package locales

// catalog is the full set of locales rendered in every dataset batch.
var catalog = []string{
	"af-ZA", "am-ET", "ar-EG", "ar-SA", "az-AZ", "be-BY", "bg-BG", "bn-BD",
	"bs-BA", "ca-ES", "cs-CZ", "cy-GB", "da-DK", "de-AT", "de-CH", "de-DE",
	"el-GR", "en-AU", "en-CA", "en-GB", "en-IE", "en-IN", "en-NZ", "en-US",
	"es-AR", "es-CL", "es-CO", "es-ES", "es-MX", "et-EE", "eu-ES", "fa-IR",
	"fi-FI", "fil-PH", "fr-BE", "fr-CA", "fr-CH", "fr-FR", "ga-IE", "gl-ES",
	"gu-IN", "he-IL", "hi-IN", "hr-HR", "hu-HU", "hy-AM", "id-ID", "is-IS",
	"it-CH", "it-IT", "ja-JP", "ka-GE", "kk-KZ", "km-KH", "kn-IN", "ko-KR",
	"lo-LA", "lt-LT", "lv-LV", "mk-MK", "ml-IN", "mn-MN", "mr-IN", "ms-MY",
	"mt-MT", "nb-NO", "ne-NP", "nl-BE", "nl-NL", "pa-IN", "pl-PL", "pt-BR",
	"pt-PT", "ro-RO", "ru-RU", "si-LK", "sk-SK", "sl-SI", "sq-AL", "sr-RS",
	"sv-SE", "sw-KE", "ta-IN", "te-IN", "th-TH", "tr-TR", "uk-UA", "ur-PK",
	"uz-UZ", "vi-VN", "zh-CN", "zh-HK", "zh-TW", "zu-ZA",
}

// displayAlternatives is the small set of display locales a trigger may
// switch the active formatter locale to. Repetition across triggers is fine.
var displayAlternatives = []string{
	"en-US", "fr-FR", "de-DE", "es-ES", "ja-JP", "ar-EG", "zh-CN",
}

// Catalog returns the ordered locale catalog.
func Catalog() []string {
	out := make([]string, len(catalog))
	copy(out, catalog)
	return out
}

// DisplayAlternatives returns the fixed set of candidate display locales.
func DisplayAlternatives() []string {
	out := make([]string, len(displayAlternatives))
	copy(out, displayAlternatives)
	return out
}
