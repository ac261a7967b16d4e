package fake

var (
	cityPrefixes          = []string{"North", "East", "West", "South", "New", "Lake", "Port", "Fort", "Mount"}
	citySuffixes          = []string{"town", "ton", "land", "ville", "berg", "burgh", "borough", "bury", "view", "port", "mouth", "stad", "furt", "chester", "haven", "side", "shire"}
	streetSuffixes        = []string{"Street", "Avenue", "Road", "Lane", "Drive", "Court", "Place", "Boulevard", "Way", "Terrace"}
	secondaryAddressTypes = []string{"Apt.", "Suite"}
)

// stateAbbrs holds the postal abbreviations of catalog states that have one.
var stateAbbrs = map[string]string{
	"California":          "CA",
	"Texas":               "TX",
	"Florida":             "FL",
	"New York":            "NY",
	"Ohio":                "OH",
	"Oregon":              "OR",
	"Georgia":             "GA",
	"Virginia":            "VA",
	"Bayern":              "BY",
	"Berlin":              "BE",
	"Hessen":              "HE",
	"Sachsen":             "SN",
	"Hamburg":             "HH",
	"Niedersachsen":       "NI",
	"Nordrhein-Westfalen": "NW",
	"São Paulo":           "SP",
	"Rio de Janeiro":      "RJ",
	"Minas Gerais":        "MG",
	"Bahia":               "BA",
	"Paraná":              "PR",
	"Pernambuco":          "PE",
}

var nameSuffixes = []string{"Jr.", "Sr.", "II", "III", "IV", "PhD", "MD"}

var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 14_4) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64; rv:125.0) Gecko/20100101 Firefox/125.0",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 17_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Mobile/15E148",
	"curl/8.7.1",
}

var loremWords = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing", "elit",
	"sed", "do", "eiusmod", "tempor", "incididunt", "ut", "labore", "et", "dolore",
	"magna", "aliqua", "enim", "ad", "minim", "veniam", "quis", "nostrud",
	"exercitation", "ullamco", "laboris", "nisi", "aliquip", "ex", "ea", "commodo",
	"consequat", "duis", "aute", "irure", "in", "reprehenderit", "voluptate",
	"velit", "esse", "cillum", "fugiat", "nulla", "pariatur", "excepteur", "sint",
	"occaecat", "cupidatat", "non", "proident", "sunt", "culpa", "qui", "officia",
	"deserunt", "mollit", "anim", "id", "est", "laborum",
}

var (
	buzzwords   = []string{"adaptive", "balanced", "centralized", "cross-platform", "distributed", "ergonomic", "integrated", "managed", "optimized", "proactive", "robust", "seamless"}
	buzzMiddles = []string{"asynchronous", "bi-directional", "contextual", "dynamic", "encompassing", "global", "heuristic", "mission-critical", "real-time", "zero tolerance"}
	buzzTails   = []string{"architecture", "capability", "database", "framework", "hierarchy", "infrastructure", "middleware", "paradigm", "solution", "workforce"}

	bsVerbs      = []string{"aggregate", "deliver", "empower", "enable", "facilitate", "harness", "leverage", "orchestrate", "streamline", "synergize"}
	bsAdjectives = []string{"B2B", "bleeding-edge", "end-to-end", "frictionless", "holistic", "next-generation", "scalable", "turn-key", "vertical", "wireless"}
	bsNouns      = []string{"channels", "deliverables", "experiences", "infrastructures", "markets", "metrics", "paradigms", "platforms", "solutions", "synergies"}

	industries  = []string{"Aerospace", "Agriculture", "Banking", "Biotechnology", "Construction", "Education", "Energy", "Healthcare", "Insurance", "Logistics", "Retail", "Telecommunications"}
	professions = []string{"accountant", "architect", "chemist", "designer", "engineer", "journalist", "lawyer", "nurse", "pharmacist", "teacher", "translator", "veterinarian"}
)

var colorNames = []string{"black", "blue", "cyan", "gold", "green", "grey", "indigo", "lime", "magenta", "maroon", "navy", "olive", "orange", "pink", "purple", "red", "silver", "teal", "violet", "white", "yellow"}

var (
	seniorities = []string{"Junior", "Senior", "Lead", "Principal", "Chief", "Associate", "Staff"}
	jobFields   = []string{"Marketing", "Engineering", "Sales", "Finance", "Operations", "Product", "Security", "Data", "Support", "Legal"}
	positions   = []string{"Analyst", "Architect", "Consultant", "Designer", "Developer", "Director", "Engineer", "Manager", "Officer", "Specialist"}
)

type fileType struct{ ext, mime string }

var fileTypes = []fileType{
	{"txt", "text/plain"},
	{"csv", "text/csv"},
	{"html", "text/html"},
	{"json", "application/json"},
	{"pdf", "application/pdf"},
	{"zip", "application/zip"},
	{"png", "image/png"},
	{"jpg", "image/jpeg"},
	{"svg", "image/svg+xml"},
	{"mp3", "audio/mpeg"},
	{"mp4", "video/mp4"},
}

type currency struct{ name, symbol string }

var currencies = map[string]currency{
	"USD": {"US Dollar", "$"},
	"EUR": {"Euro", "€"},
	"JPY": {"Yen", "¥"},
	"BRL": {"Brazilian Real", "R$"},
	"SAR": {"Saudi Riyal", "﷼"},
	"GBP": {"Pound Sterling", "£"},
}

type statusCode struct {
	code int
	text string
}

var statusCodes = []statusCode{
	{200, "200 OK"},
	{201, "201 Created"},
	{202, "202 Accepted"},
	{204, "204 No Content"},
	{301, "301 Moved Permanently"},
	{302, "302 Found"},
	{304, "304 Not Modified"},
	{400, "400 Bad Request"},
	{401, "401 Unauthorized"},
	{403, "403 Forbidden"},
	{404, "404 Not Found"},
	{409, "409 Conflict"},
	{422, "422 Unprocessable Entity"},
	{429, "429 Too Many Requests"},
	{500, "500 Internal Server Error"},
	{502, "502 Bad Gateway"},
	{503, "503 Service Unavailable"},
}
