package fake

import "golang.org/x/text/language"

// catalog is the locale-specific data of one locale.
type catalog struct {
	code         string
	tag          language.Tag
	firstNames   []string
	lastNames    []string
	titles       []string
	cities       []string
	streets      []string
	streetFormat string // {n} number, {s} street
	states       []string
	country      string
	countryCode  string
	zipFormat    string // # digit, ? upper-case letter
	phoneFormats []string
	cellFormats  []string
	companyTails []string
	freeEmail    []string
	domainTLDs   []string
	currency     string
	timeZone     string
}

// Supported locale codes. EN is the default.
const (
	EN   = "EN"
	FRFR = "FR_FR"
	ITIT = "IT_IT"
	JAJP = "JA_JP"
	DEDE = "DE_DE"
	PTBR = "PT_BR"
	ARSA = "AR_SA"
	CYGB = "CY_GB"
)

var catalogs = []*catalog{
	{
		code:         EN,
		tag:          language.AmericanEnglish,
		firstNames:   []string{"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda", "David", "Elizabeth", "William", "Susan"},
		lastNames:    []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Wilson", "Anderson", "Taylor", "Thomas"},
		titles:       []string{"Mr.", "Mrs.", "Ms.", "Miss", "Dr."},
		cities:       []string{"Springfield", "Riverside", "Franklin", "Greenville", "Bristol", "Clinton", "Fairview", "Salem", "Madison", "Georgetown"},
		streets:      []string{"Main Street", "Oak Avenue", "Pine Road", "Maple Drive", "Cedar Lane", "Elm Street", "Washington Boulevard", "Lake Road"},
		streetFormat: "{n} {s}",
		states:       []string{"California", "Texas", "Florida", "New York", "Ohio", "Oregon", "Georgia", "Virginia"},
		country:      "United States",
		countryCode:  "US",
		zipFormat:    "#####",
		phoneFormats: []string{"(###) ###-####", "###-###-####", "###.###.####"},
		cellFormats:  []string{"###-###-####", "(###) ###-####"},
		companyTails: []string{"Inc", "LLC", "Group", "Corp", "and Sons"},
		freeEmail:    []string{"gmail.com", "yahoo.com", "hotmail.com", "outlook.com"},
		domainTLDs:   []string{"com", "net", "org", "io"},
		currency:     "USD",
		timeZone:     "America/New_York",
	},
	{
		code:         FRFR,
		tag:          language.MustParse("fr-FR"),
		firstNames:   []string{"Jean", "Marie", "Pierre", "Camille", "Louis", "Léa", "Hugo", "Chloé", "Lucas", "Manon", "Gabriel", "Inès"},
		lastNames:    []string{"Martin", "Bernard", "Dubois", "Thomas", "Robert", "Richard", "Petit", "Durand", "Leroy", "Moreau", "Simon", "Laurent"},
		titles:       []string{"M.", "Mme", "Mlle", "Dr"},
		cities:       []string{"Paris", "Lyon", "Marseille", "Toulouse", "Nice", "Nantes", "Strasbourg", "Bordeaux", "Lille", "Rennes"},
		streets:      []string{"rue de la Paix", "avenue Victor Hugo", "boulevard Saint-Michel", "rue du Bac", "place de la République", "rue des Lilas"},
		streetFormat: "{n}, {s}",
		states:       []string{"Île-de-France", "Bretagne", "Normandie", "Occitanie", "Provence-Alpes-Côte d'Azur", "Grand Est"},
		country:      "France",
		countryCode:  "FR",
		zipFormat:    "#####",
		phoneFormats: []string{"01 ## ## ## ##", "02 ## ## ## ##", "04 ## ## ## ##"},
		cellFormats:  []string{"06 ## ## ## ##", "07 ## ## ## ##"},
		companyTails: []string{"SA", "SARL", "SAS", "et Fils"},
		freeEmail:    []string{"orange.fr", "free.fr", "laposte.net", "gmail.com"},
		domainTLDs:   []string{"fr", "com", "net"},
		currency:     "EUR",
		timeZone:     "Europe/Paris",
	},
	{
		code:         ITIT,
		tag:          language.MustParse("it-IT"),
		firstNames:   []string{"Giuseppe", "Maria", "Giovanni", "Anna", "Antonio", "Giulia", "Marco", "Francesca", "Luca", "Chiara", "Matteo", "Sara"},
		lastNames:    []string{"Rossi", "Russo", "Ferrari", "Esposito", "Bianchi", "Romano", "Colombo", "Ricci", "Marino", "Greco", "Bruno", "Gallo"},
		titles:       []string{"Sig.", "Sig.ra", "Dott.", "Ing."},
		cities:       []string{"Roma", "Milano", "Napoli", "Torino", "Palermo", "Genova", "Bologna", "Firenze", "Bari", "Venezia"},
		streets:      []string{"Via Roma", "Via Garibaldi", "Corso Italia", "Via Dante", "Piazza Duomo", "Via Mazzini"},
		streetFormat: "{s} {n}",
		states:       []string{"Lazio", "Lombardia", "Campania", "Piemonte", "Sicilia", "Toscana", "Veneto"},
		country:      "Italia",
		countryCode:  "IT",
		zipFormat:    "#####",
		phoneFormats: []string{"06 ########", "02 ########", "011 #######"},
		cellFormats:  []string{"3## ### ####"},
		companyTails: []string{"S.p.A.", "S.r.l.", "e figli"},
		freeEmail:    []string{"libero.it", "virgilio.it", "gmail.com"},
		domainTLDs:   []string{"it", "com", "eu"},
		currency:     "EUR",
		timeZone:     "Europe/Rome",
	},
	{
		code:         JAJP,
		tag:          language.Japanese,
		firstNames:   []string{"翔太", "さくら", "大輔", "陽子", "健", "美咲", "拓也", "愛", "直樹", "結衣"},
		lastNames:    []string{"佐藤", "鈴木", "高橋", "田中", "伊藤", "渡辺", "山本", "中村", "小林", "加藤"},
		titles:       []string{"様", "さん", "先生"},
		cities:       []string{"東京", "横浜", "大阪", "名古屋", "札幌", "福岡", "神戸", "京都", "川崎", "仙台"},
		streets:      []string{"中央通り", "桜通り", "本町", "栄町", "緑町", "旭町"},
		streetFormat: "{s}{n}番地",
		states:       []string{"東京都", "大阪府", "北海道", "神奈川県", "愛知県", "福岡県"},
		country:      "日本",
		countryCode:  "JP",
		zipFormat:    "###-####",
		phoneFormats: []string{"03-####-####", "06-####-####", "0##-###-####"},
		cellFormats:  []string{"090-####-####", "080-####-####", "070-####-####"},
		companyTails: []string{"株式会社", "有限会社", "合同会社"},
		freeEmail:    []string{"yahoo.co.jp", "gmail.com", "docomo.ne.jp"},
		domainTLDs:   []string{"jp", "co.jp", "com"},
		currency:     "JPY",
		timeZone:     "Asia/Tokyo",
	},
	{
		code:         DEDE,
		tag:          language.MustParse("de-DE"),
		firstNames:   []string{"Lukas", "Anna", "Leon", "Lena", "Paul", "Hannah", "Finn", "Mia", "Jonas", "Emma", "Felix", "Lea"},
		lastNames:    []string{"Müller", "Schmidt", "Schneider", "Fischer", "Weber", "Meyer", "Wagner", "Becker", "Schulz", "Hoffmann", "Koch", "Richter"},
		titles:       []string{"Herr", "Frau", "Dr.", "Prof."},
		cities:       []string{"Berlin", "Hamburg", "München", "Köln", "Frankfurt", "Stuttgart", "Düsseldorf", "Leipzig", "Dresden", "Bremen"},
		streets:      []string{"Hauptstraße", "Schulstraße", "Gartenstraße", "Bahnhofstraße", "Dorfstraße", "Bergstraße"},
		streetFormat: "{s} {n}",
		states:       []string{"Bayern", "Berlin", "Hessen", "Sachsen", "Hamburg", "Niedersachsen", "Nordrhein-Westfalen"},
		country:      "Deutschland",
		countryCode:  "DE",
		zipFormat:    "#####",
		phoneFormats: []string{"030 #######", "040 #######", "089 #######"},
		cellFormats:  []string{"0151 ########", "0171 ########", "0160 ########"},
		companyTails: []string{"GmbH", "AG", "KG", "GmbH & Co. KG"},
		freeEmail:    []string{"web.de", "gmx.de", "t-online.de", "gmail.com"},
		domainTLDs:   []string{"de", "com", "eu"},
		currency:     "EUR",
		timeZone:     "Europe/Berlin",
	},
	{
		code:         PTBR,
		tag:          language.BrazilianPortuguese,
		firstNames:   []string{"João", "Maria", "José", "Ana", "Pedro", "Juliana", "Lucas", "Fernanda", "Gabriel", "Beatriz", "Rafael", "Larissa"},
		lastNames:    []string{"Silva", "Santos", "Oliveira", "Souza", "Rodrigues", "Ferreira", "Alves", "Pereira", "Lima", "Gomes", "Costa", "Ribeiro"},
		titles:       []string{"Sr.", "Sra.", "Dr.", "Dra."},
		cities:       []string{"São Paulo", "Rio de Janeiro", "Brasília", "Salvador", "Fortaleza", "Belo Horizonte", "Manaus", "Curitiba", "Recife", "Porto Alegre"},
		streets:      []string{"Rua das Flores", "Avenida Paulista", "Rua XV de Novembro", "Avenida Brasil", "Rua Sete de Setembro", "Rua da Consolação"},
		streetFormat: "{s}, {n}",
		states:       []string{"São Paulo", "Rio de Janeiro", "Minas Gerais", "Bahia", "Paraná", "Pernambuco"},
		country:      "Brasil",
		countryCode:  "BR",
		zipFormat:    "#####-###",
		phoneFormats: []string{"(11) ####-####", "(21) ####-####", "(31) ####-####"},
		cellFormats:  []string{"(11) 9####-####", "(21) 9####-####"},
		companyTails: []string{"Ltda.", "S.A.", "e Filhos"},
		freeEmail:    []string{"uol.com.br", "bol.com.br", "gmail.com"},
		domainTLDs:   []string{"com.br", "br", "com"},
		currency:     "BRL",
		timeZone:     "America/Sao_Paulo",
	},
	{
		code:         ARSA,
		tag:          language.MustParse("ar-SA"),
		firstNames:   []string{"محمد", "فاطمة", "عبدالله", "نورة", "خالد", "سارة", "فهد", "مريم", "سلطان", "ريم"},
		lastNames:    []string{"العتيبي", "القحطاني", "الغامدي", "الشهري", "الدوسري", "الحربي", "الزهراني", "المطيري"},
		titles:       []string{"السيد", "السيدة", "الدكتور"},
		cities:       []string{"الرياض", "جدة", "مكة", "المدينة", "الدمام", "الخبر", "الطائف", "تبوك"},
		streets:      []string{"شارع الملك فهد", "طريق الملك عبدالعزيز", "شارع التحلية", "شارع العليا"},
		streetFormat: "{n} {s}",
		states:       []string{"منطقة الرياض", "منطقة مكة المكرمة", "المنطقة الشرقية", "منطقة المدينة المنورة"},
		country:      "المملكة العربية السعودية",
		countryCode:  "SA",
		zipFormat:    "#####",
		phoneFormats: []string{"011 ### ####", "012 ### ####"},
		cellFormats:  []string{"05# ### ####"},
		companyTails: []string{"المحدودة", "القابضة", "وشركاه"},
		freeEmail:    []string{"gmail.com", "hotmail.com", "yahoo.com"},
		domainTLDs:   []string{"sa", "com.sa", "com"},
		currency:     "SAR",
		timeZone:     "Asia/Riyadh",
	},
	{
		code:         CYGB,
		tag:          language.MustParse("cy-GB"),
		firstNames:   []string{"Dafydd", "Cerys", "Rhys", "Angharad", "Gareth", "Eleri", "Owain", "Ffion", "Iwan", "Siân", "Gethin", "Nia"},
		lastNames:    []string{"Jones", "Williams", "Davies", "Evans", "Thomas", "Roberts", "Hughes", "Lewis", "Morgan", "Griffiths", "Price", "Rees"},
		titles:       []string{"Mr", "Mrs", "Miss", "Dr"},
		cities:       []string{"Caerdydd", "Abertawe", "Casnewydd", "Wrecsam", "Bangor", "Aberystwyth", "Caerfyrddin", "Llandudno"},
		streets:      []string{"Heol y Frenhines", "Stryd Fawr", "Ffordd yr Eglwys", "Heol y Parc", "Lôn Goed"},
		streetFormat: "{n} {s}",
		states:       []string{"Gwynedd", "Powys", "Ceredigion", "Sir Gâr", "Sir Benfro", "Ynys Môn"},
		country:      "Cymru",
		countryCode:  "GB",
		zipFormat:    "??# #??",
		phoneFormats: []string{"029 #### ####", "01### ######"},
		cellFormats:  []string{"07### ######"},
		companyTails: []string{"Cyf.", "CCC", "a'i Feibion"},
		freeEmail:    []string{"btinternet.com", "gmail.com", "outlook.com"},
		domainTLDs:   []string{"cymru", "wales", "co.uk"},
		currency:     "GBP",
		timeZone:     "Europe/London",
	},
}
