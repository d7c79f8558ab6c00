package generate

// Fixed name pools. Generation draws from these with the seeded stream so a
// dataset is fully reproducible from its seed alone.

var teamPool = []string{
	"Pipeline Pirates", "Cold Call Crew", "Quota Crushers", "Deal Hunters",
	"Outbound Owls", "Revenue Rangers",
}

var industryPool = []string{
	"SaaS", "Fintech", "Healthcare", "Logistics", "Manufacturing",
	"Retail", "Education", "Real Estate", "Cybersecurity", "Media",
}

var firstNamePool = []string{
	"Ava", "Liam", "Maya", "Noah", "Zoe", "Ethan", "Lena", "Owen",
	"Priya", "Marcus", "Sofia", "Dmitri", "Hannah", "Jorge", "Keiko",
	"Tariq", "Ingrid", "Caleb", "Nadia", "Felix",
}

var lastNamePool = []string{
	"Moreno", "Okafor", "Lindqvist", "Tanaka", "Brooks", "Haddad",
	"Novak", "Ferreira", "Kowalski", "Adeyemi", "Schmidt", "Ryan",
	"Castillo", "Ivanova", "Nguyen", "Ortega", "Petrov", "Walsh",
	"Yamamoto", "Zhang",
}

var companyStemPool = []string{
	"Acme", "Borealis", "Cobalt", "Driftwood", "Everbright", "Foxglove",
	"Granite", "Harbor", "Ironleaf", "Juniper", "Kestrel", "Lumen",
	"Meridian", "Northwind", "Obsidian", "Pinnacle", "Quartz", "Redwood",
	"Summit", "Tidewater", "Umbra", "Vanguard", "Wolfram", "Zenith",
	"Atlas", "Basalt",
}

var companySuffixPool = []string{
	"Labs", "Systems", "Group", "Works", "Partners", "Industries",
	"Digital", "Holdings",
}
