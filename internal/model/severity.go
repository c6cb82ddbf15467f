package model

// Severity represents how urgently a discrepancy should be acted on.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and sorting. The String() method provides
// human-readable output when needed.
type Severity int

const (
	// SeverityInfo indicates observations with no customer-facing impact.
	SeverityInfo Severity = iota

	// SeverityLow indicates cosmetic inconsistencies such as spelling
	// variants of the same term. Worth fixing, unlikely to mislead anyone.
	SeverityLow

	// SeverityMedium indicates inconsistencies that can confuse customers,
	// such as conflicting package attributes or scattered contact details.
	SeverityMedium

	// SeverityHigh indicates inconsistencies with direct commercial impact:
	// conflicting prices or translations that promise different things.
	SeverityHigh
)

// String returns a human-readable representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityLow:
		return "LOW"
	case SeverityMedium:
		return "MEDIUM"
	case SeverityHigh:
		return "HIGH"
	default:
		return "UNKNOWN"
	}
}

// Discrepancy type identifiers. These are the stable values written into
// reports; renaming one is a breaking change for report consumers.
const (
	TypePricingInconsistency      = "pricing_inconsistency"
	TypeSpeedInconsistency        = "speed_inconsistency"
	TypeDataLimitInconsistency    = "data_limit_inconsistency"
	TypeLanguagePriceMismatch     = "price_mismatch_between_languages"
	TypeLanguageFeatureMismatch   = "feature_mismatch_between_languages"
	TypeInternalPriceMismatch     = "internal_language_price_mismatch"
	TypeMissingSinhalaTranslation = "missing_sinhala_translation"
	TypeMissingEnglishTranslation = "missing_english_translation"
	TypeMultiplePhoneNumbers      = "multiple_phone_numbers"
	TypeMultipleEmailAddresses    = "multiple_email_addresses"
	TypeInconsistentTerminology   = "inconsistent_terminology"
	TypeInconsistentBannerText    = "inconsistent_banner_text"
)

// Report categories group discrepancy types for the summary counters.
const (
	CategoryPricing     = "pricing_discrepancies"
	CategoryPackage     = "package_details_discrepancies"
	CategoryTranslation = "translation_mismatches"
	CategoryContact     = "contact_info_discrepancies"
	CategoryTerminology = "terminology_discrepancies"
)

// DiscrepancyInfo carries the fixed metadata for one discrepancy type:
// which summary category it belongs to, its severity, and the remediation
// line the report prints.
type DiscrepancyInfo struct {
	Category       string
	Severity       Severity
	Recommendation string
}

// discrepancyInfoMapping is the single source of truth for per-type
// metadata. Keeping it in one table rather than spread across the phase
// analyzers keeps risk assessment consistent across the application.
var discrepancyInfoMapping = map[string]DiscrepancyInfo{
	TypePricingInconsistency: {
		Category:       CategoryPricing,
		Severity:       SeverityHigh,
		Recommendation: "Fix conflicting prices so every page advertises the same amount for the same service.",
	},
	TypeSpeedInconsistency: {
		Category:       CategoryPackage,
		Severity:       SeverityMedium,
		Recommendation: "Harmonize advertised speeds for packages with identical feature sets.",
	},
	TypeDataLimitInconsistency: {
		Category:       CategoryPackage,
		Severity:       SeverityMedium,
		Recommendation: "Harmonize advertised data allowances for packages with identical feature sets.",
	},
	TypeLanguagePriceMismatch: {
		Category:       CategoryTranslation,
		Severity:       SeverityHigh,
		Recommendation: "Align prices between the English and Sinhala versions of the page.",
	},
	TypeLanguageFeatureMismatch: {
		Category:       CategoryTranslation,
		Severity:       SeverityMedium,
		Recommendation: "Align advertised features between the English and Sinhala versions of the page.",
	},
	TypeInternalPriceMismatch: {
		Category:       CategoryTranslation,
		Severity:       SeverityHigh,
		Recommendation: "Reconcile the English and Sinhala price mentions within the page.",
	},
	TypeMissingSinhalaTranslation: {
		Category:       CategoryTranslation,
		Severity:       SeverityMedium,
		Recommendation: "Provide a Sinhala version of the page.",
	},
	TypeMissingEnglishTranslation: {
		Category:       CategoryTranslation,
		Severity:       SeverityMedium,
		Recommendation: "Provide an English version of the page.",
	},
	TypeMultiplePhoneNumbers: {
		Category:       CategoryContact,
		Severity:       SeverityMedium,
		Recommendation: "Consolidate contact numbers; publish one canonical hotline per service.",
	},
	TypeMultipleEmailAddresses: {
		Category:       CategoryContact,
		Severity:       SeverityMedium,
		Recommendation: "Consolidate contact email addresses across pages.",
	},
	TypeInconsistentTerminology: {
		Category:       CategoryTerminology,
		Severity:       SeverityLow,
		Recommendation: "Adopt a style guide so the same term is always spelled the same way.",
	},
	TypeInconsistentBannerText: {
		Category:       CategoryTerminology,
		Severity:       SeverityLow,
		Recommendation: "Regenerate banners from one template so their text stays identical.",
	},
}

// GetDiscrepancyInfo returns the metadata for a discrepancy type.
// Unknown types default to SeverityInfo in the terminology category so a
// forgotten table entry degrades visibly but harmlessly.
func GetDiscrepancyInfo(discrepancyType string) DiscrepancyInfo {
	if info, ok := discrepancyInfoMapping[discrepancyType]; ok {
		return info
	}
	return DiscrepancyInfo{
		Category:       CategoryTerminology,
		Severity:       SeverityInfo,
		Recommendation: "Review the finding manually.",
	}
}

// GetSeverity returns the severity level for a discrepancy type.
func GetSeverity(discrepancyType string) Severity {
	return GetDiscrepancyInfo(discrepancyType).Severity
}
