package classify

// Category tags produced by the default rule table.
const (
	CategoryPersonnel        = "personnel"
	CategoryRent             = "rent"
	CategoryUtilities        = "utilities"
	CategoryFacility         = "facility"
	CategoryTaxesDuties      = "taxes_duties"
	CategoryInsurance        = "insurance"
	CategoryContributions    = "contributions"
	CategoryVehicle          = "vehicle"
	CategoryMarketing        = "marketing"
	CategoryEntertainment    = "entertainment"
	CategoryTravel           = "travel"
	CategoryShipping         = "shipping"
	CategoryITServices       = "it_services"
	CategoryDepreciation     = "depreciation"
	CategoryOfficeAdmin      = "office_admin"
	CategoryLiterature       = "literature"
	CategoryTraining         = "training"
	CategoryAccounting       = "accounting"
	CategoryBankFees         = "bank_fees"
	CategoryPhoneInternet    = "phone_internet"
	CategoryExternalServices = "external_services"
	CategoryGoods            = "goods"
)

// DefaultRules is the business expense categorization table over the SKR03
// chart. Priorities follow fixed bands so overlap intent is explicit:
//
//	1-9   generic catch-all rules (broad ranges, loose keywords)
//	10-14 specific rules that override a generic band they sit inside
//	15-19 near-exclusive rules that must win whenever they match
//
// The 4900-4999 administration band is the canonical overlap: porto,
// telephone, literature, training, accounting and bank fees each carve
// their decade out of the generic office_admin rule by priority.
var DefaultRules = []Rule{
	{
		ID:       CategoryPersonnel,
		Keywords: []string{"lohn", "löhne", "gehalt", "gehälter", "personal"},
		Ranges:   []Range{{4100, 4199}},
		Priority: 10,
	},
	{
		ID:       CategoryRent,
		Keywords: []string{"miete", "pacht", "raumkosten"},
		Ranges:   []Range{{4210, 4229}},
		Priority: 10,
	},
	{
		ID:       CategoryUtilities,
		Keywords: []string{"strom", "wasser", "heizung", "energie"},
		Ranges:   []Range{{4230, 4249}},
		Priority: 12,
	},
	{
		ID:       CategoryFacility,
		Keywords: []string{"reinigung", "instandhaltung"},
		Ranges:   []Range{{4250, 4269}},
		Priority: 9,
	},
	{
		// Broad band from Gewerbesteuer up to Beiträge, plus Kfz-Steuer.
		// Insurance, contributions and vehicle each outrank it on their
		// slice of the band.
		ID:       CategoryTaxesDuties,
		Keywords: []string{"betriebssteuern", "abgaben"},
		Ranges:   []Range{{4320, 4399}, {4510, 4519}},
		Priority: 9,
	},
	{
		ID:       CategoryInsurance,
		Keywords: []string{"versicherung"},
		Ranges:   []Range{{4360, 4366}},
		Priority: 12,
	},
	{
		ID:       CategoryContributions,
		Keywords: []string{"beitrag", "beiträge", "gebühren"},
		Ranges:   []Range{{4380, 4399}},
		Priority: 11,
	},
	{
		ID:       CategoryVehicle,
		Keywords: []string{"kfz", "fahrzeug", "fuhrpark", "pkw"},
		Ranges:   []Range{{4500, 4599}},
		Priority: 10,
	},
	{
		ID:       CategoryMarketing,
		Keywords: []string{"werbung", "marketing", "geschenke"},
		Ranges:   []Range{{4600, 4649}},
		Priority: 10,
	},
	{
		ID:       CategoryEntertainment,
		Keywords: []string{"bewirtung"},
		Ranges:   []Range{{4650, 4659}},
		Priority: 14,
	},
	{
		ID:       CategoryTravel,
		Keywords: []string{"reise", "reisekosten", "übernachtung"},
		Ranges:   []Range{{4660, 4699}},
		Priority: 10,
	},
	{
		ID:       CategoryShipping,
		Keywords: []string{"fracht", "porto", "versand"},
		Ranges:   []Range{{4730, 4799}, {4910, 4919}},
		Priority: 9,
	},
	{
		ID:       CategoryITServices,
		Keywords: []string{"software", "edv", "hosting", "lizenz"},
		Ranges:   []Range{{4806, 4809}},
		Priority: 13,
	},
	{
		ID:       CategoryDepreciation,
		Keywords: []string{"abschreibung", "afa"},
		Ranges:   []Range{{4820, 4899}},
		Priority: 10,
	},
	{
		// Generic administration band; every specific 49xx rule above and
		// below outranks it inside its own decade.
		ID:       CategoryOfficeAdmin,
		Keywords: []string{"büro", "verwaltung"},
		Ranges:   []Range{{4900, 4999}},
		Priority: 8,
	},
	{
		ID:       CategoryLiterature,
		Keywords: []string{"zeitschriften", "bücher", "fachliteratur"},
		Ranges:   []Range{{4940, 4944}},
		Priority: 12,
	},
	{
		ID:       CategoryTraining,
		Keywords: []string{"fortbildung", "schulung", "weiterbildung"},
		Ranges:   []Range{{4945, 4949}},
		Priority: 12,
	},
	{
		ID:       CategoryAccounting,
		Keywords: []string{"buchführung", "steuerberatung", "jahresabschluss", "abschluss- und prüfungskosten"},
		Ranges:   []Range{{4955, 4959}},
		Priority: 12,
	},
	{
		ID:       CategoryBankFees,
		Keywords: []string{"kontoführung", "bankgebühren", "geldverkehr"},
		Ranges:   []Range{{4970, 4979}},
		Priority: 14,
	},
	{
		ID:       CategoryPhoneInternet,
		Keywords: []string{"telefon", "internet", "mobilfunk", "telekommunikation"},
		Ranges:   []Range{{4920, 4929}},
		Priority: 13,
	},
	{
		// Near-exclusive: Fremdleistungen must never land in a generic
		// expense bucket, whatever else matches.
		ID:       CategoryExternalServices,
		Keywords: []string{"fremdleistung", "subunternehmer"},
		Ranges:   []Range{{3100, 3199}},
		Priority: 15,
	},
	{
		ID:       CategoryGoods,
		Keywords: []string{"wareneingang"},
		Ranges:   []Range{{3200, 3999}},
		Priority: 5,
	},
}
