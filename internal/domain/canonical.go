package domain

import "strings"

// Canonical enumerations for the hierarchy and beneficiary domains. These are
// the only values that may appear in plan filters for the respective columns.

// CanonicalAssemblies lists the locked assembly constituency names
var CanonicalAssemblies = []string{
	"175-Navsari",
	"163-Limbayat",
	"165-Majura",
	"164-Udhna",
	"176-Gandevi",
	"168-Choryasi",
	"174-Jalalpur",
}

// CanonicalIncharges lists the locked assembly incharge names
var CanonicalIncharges = []string{
	"RAKESH DESAI",
	"HARSHBHAI SANGHVI",
	"R.C. PATEL",
	"NARESHBHAI MANGABHAI PATEL",
	"SANDIP DESAI",
	"MANUBHAI PATEL",
	"Sangitaben Rajendrakumar Patil",
}

// CanonicalSchemes lists the locked beneficiary scheme names
var CanonicalSchemes = []string{
	"DIVYANG JAN SAMPARK",
	"VADIL VANDANA",
	"PMAY",
	"MEDICAL SAHAY",
	"CNG RIKSHA",
	"GAS CONNECTION",
	"IZZAT PASS",
	"PM KISAN",
	"SOLAR CHARKHA",
	"LABHARTHI",
	"PM SVANIDHI",
	"SUKANYA YOJANA",
	"AYUSHMAN BHARAT",
	"LORRY DISTRIBUTION",
	"SENIOR CITIZEN",
	"UJJWALA YOJANA",
	"VIDHWA SAHAY",
	"PM-JAY (Pradhan Mantri Jan Arogya Yojana)",
	"DIVYANG",
	"TIRANGA",
}

// MPName is the fixed rendering for the Member of Parliament over all seven
// assemblies. Composer output uses this form only.
const MPName = "C.R PATIL"

// CreatedForAssembly is the fixed answer for identity questions about which
// assembly this assistant serves.
const CreatedForAssembly = "163-Limbayat"

var assemblyAliases = map[string]string{
	"limb":               "163-Limbayat",
	"limbayat":           "163-Limbayat",
	"limbaiyat":          "163-Limbayat",
	"163":                "163-Limbayat",
	"assembly 163":       "163-Limbayat",
	"limb area":          "163-Limbayat",
	"લિંબાયત":            "163-Limbayat",
	"लिम्बायत":           "163-Limbayat",
	"navsari":            "175-Navsari",
	"navsar":             "175-Navsari",
	"175":                "175-Navsari",
	"navsari assembly":   "175-Navsari",
	"નવસારી":             "175-Navsari",
	"majura":             "165-Majura",
	"majra":              "165-Majura",
	"165":                "165-Majura",
	"majura constituency": "165-Majura",
	"મજુરા":              "165-Majura",
	"udhna":              "164-Udhna",
	"udana":              "164-Udhna",
	"164":                "164-Udhna",
	"udhna area":         "164-Udhna",
	"ઉધના":               "164-Udhna",
	"gandevi":            "176-Gandevi",
	"gandhvi":            "176-Gandevi",
	"176":                "176-Gandevi",
	"ગાંદેવી":            "176-Gandevi",
	"choryasi":           "168-Choryasi",
	"choriyasi":          "168-Choryasi",
	"168":                "168-Choryasi",
	"ચોર્યાસી":           "168-Choryasi",
	"jalalpur":           "174-Jalalpur",
	"jalapur":            "174-Jalalpur",
	"174":                "174-Jalalpur",
	"જલાલપુર":            "174-Jalalpur",
}

var inchargeAliases = map[string]string{
	"sangitaben":        "Sangitaben Rajendrakumar Patil",
	"patil":             "Sangitaben Rajendrakumar Patil",
	"patil madam":       "Sangitaben Rajendrakumar Patil",
	"sangita patil":     "Sangitaben Rajendrakumar Patil",
	"sangitaben patil":  "Sangitaben Rajendrakumar Patil",
	"rajendra kumar":    "Sangitaben Rajendrakumar Patil",
	"rajendrakumar":     "Sangitaben Rajendrakumar Patil",
	"સંગીતાબેન":         "Sangitaben Rajendrakumar Patil",
	"પાટીલ":             "Sangitaben Rajendrakumar Patil",
	"rc patel":          "R.C. PATEL",
	"r c patel":         "R.C. PATEL",
	"r.c. patel":        "R.C. PATEL",
	"patel saheb":       "R.C. PATEL",
	"cr patel":          "R.C. PATEL",
	"આર.સી. પટેલ":       "R.C. PATEL",
	"harshbhai":         "HARSHBHAI SANGHVI",
	"harsh sanghvi":     "HARSHBHAI SANGHVI",
	"sanghvi":           "HARSHBHAI SANGHVI",
	"harshbhai sanghvi": "HARSHBHAI SANGHVI",
	"હર્ષ સંઘવી":        "HARSHBHAI SANGHVI",
	"rakesh desai":      "RAKESH DESAI",
	"desai":             "RAKESH DESAI",
	"desai sir":         "RAKESH DESAI",
	"રાકેશ દેસાઈ":       "RAKESH DESAI",
	"naresh patel":      "NARESHBHAI MANGABHAI PATEL",
	"nareshbhai":        "NARESHBHAI MANGABHAI PATEL",
	"mangabhai patel":   "NARESHBHAI MANGABHAI PATEL",
	"nareshbhai mangabhai patel": "NARESHBHAI MANGABHAI PATEL",
	"નરેશ પટેલ":         "NARESHBHAI MANGABHAI PATEL",
	"sandip desai":      "SANDIP DESAI",
	"sandipbhai":        "SANDIP DESAI",
	"desai sandip":      "SANDIP DESAI",
	"manubhai":          "MANUBHAI PATEL",
	"manu patel":        "MANUBHAI PATEL",
	"manubhai patel":    "MANUBHAI PATEL",
	"મનુભાઈ પટેલ":       "MANUBHAI PATEL",
}

var schemeAliases = map[string]string{
	"ayushman":              "AYUSHMAN BHARAT",
	"ayushman card":         "AYUSHMAN BHARAT",
	"ayushman bharat":       "AYUSHMAN BHARAT",
	"આયુષ્માન":              "AYUSHMAN BHARAT",
	"आयुष्मान":              "AYUSHMAN BHARAT",
	"pmjay":                 "PM-JAY (Pradhan Mantri Jan Arogya Yojana)",
	"pm-jay":                "PM-JAY (Pradhan Mantri Jan Arogya Yojana)",
	"jan arogya":            "PM-JAY (Pradhan Mantri Jan Arogya Yojana)",
	"प्रधान मंत्री जन आरोग्य": "PM-JAY (Pradhan Mantri Jan Arogya Yojana)",
	"ujjwala":               "UJJWALA YOJANA",
	"ujjwala yojana":        "UJJWALA YOJANA",
	"gas yojana":            "UJJWALA YOJANA",
	"lpg":                   "UJJWALA YOJANA",
	"ઉજ્જવલા":               "UJJWALA YOJANA",
	"old age":               "SENIOR CITIZEN",
	"senior citizen":        "SENIOR CITIZEN",
	"વૃદ્ધ":                 "SENIOR CITIZEN",
	"divyang":               "DIVYANG",
	"disabled":              "DIVYANG",
	"હેન્ડીકેપ":             "DIVYANG",
	"auto":                  "CNG RIKSHA",
	"riksha":                "CNG RIKSHA",
	"cng auto":              "CNG RIKSHA",
	"cng riksha":            "CNG RIKSHA",
}

func normalizeAlias(ref string) string {
	return strings.ToLower(strings.TrimSpace(ref))
}

// ResolveAssembly maps a user reference to exactly one canonical assembly
// name. Resolution is deterministic: exact canonical match first, then the
// alias table. Unknown references report ok=false; callers must not guess.
func ResolveAssembly(ref string) (string, bool) {
	norm := normalizeAlias(ref)
	if norm == "" {
		return "", false
	}

	for _, c := range CanonicalAssemblies {
		if strings.EqualFold(c, norm) {
			return c, true
		}
	}

	if c, ok := assemblyAliases[norm]; ok {
		return c, true
	}

	return "", false
}

// ResolveIncharge maps a user reference to exactly one canonical incharge name
func ResolveIncharge(ref string) (string, bool) {
	norm := normalizeAlias(ref)
	if norm == "" {
		return "", false
	}

	for _, c := range CanonicalIncharges {
		if strings.EqualFold(c, norm) {
			return c, true
		}
	}

	if c, ok := inchargeAliases[norm]; ok {
		return c, true
	}

	return "", false
}

// ResolveScheme maps a user reference to exactly one canonical scheme name
func ResolveScheme(ref string) (string, bool) {
	norm := normalizeAlias(ref)
	if norm == "" {
		return "", false
	}

	for _, c := range CanonicalSchemes {
		if strings.EqualFold(c, norm) {
			return c, true
		}
	}

	if c, ok := schemeAliases[norm]; ok {
		return c, true
	}

	return "", false
}

// IsCanonicalAssembly reports whether the value is one of the locked names
func IsCanonicalAssembly(name string) bool {
	for _, c := range CanonicalAssemblies {
		if c == name {
			return true
		}
	}

	return false
}
