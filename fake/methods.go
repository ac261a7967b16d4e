package fake

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/syssam/jgd"
)

var methods = map[string]method{
	// name
	"name.firstName":     fromCatalog(func(c *catalog) []string { return c.firstNames }),
	"name.lastName":      fromCatalog(func(c *catalog) []string { return c.lastNames }),
	"name.title":         fromCatalog(func(c *catalog) []string { return c.titles }),
	"name.suffix":        fromList(nameSuffixes),
	"name.name":          fullNameMethod,
	"name.nameWithTitle": nameWithTitle,

	// internet
	"internet.username":          usernameMethod,
	"internet.freeEmailProvider": fromCatalog(func(c *catalog) []string { return c.freeEmail }),
	"internet.domainSuffix":      fromCatalog(func(c *catalog) []string { return c.domainTLDs }),
	"internet.freeEmail":         freeEmail,
	"internet.email":             freeEmail,
	"internet.safeEmail":         safeEmail,
	"internet.password":          password,
	"internet.IPv4":              ipv4,
	"internet.IP":                ipv4,
	"internet.IPv6":              ipv6,
	"internet.MACAddress":        macAddress,
	"internet.userAgent":         fromList(userAgents),
	"internet.url":               url,

	// lorem
	"lorem.word":       fromList(loremWords),
	"lorem.words":      loremWordList,
	"lorem.sentence":   loremSentence,
	"lorem.sentences":  loremSentences,
	"lorem.paragraph":  loremParagraph,
	"lorem.paragraphs": loremParagraphs,

	// address
	"address.cityName":             fromCatalog(func(c *catalog) []string { return c.cities }),
	"address.streetName":           fromCatalog(func(c *catalog) []string { return c.streets }),
	"address.stateName":            fromCatalog(func(c *catalog) []string { return c.states }),
	"address.streetAddress":        streetAddress,
	"address.buildingNumber":       buildingNumber,
	"address.secondaryAddress":     secondaryAddress,
	"address.zipCode":              zipCode,
	"address.postCode":             zipCode,
	"address.countryName":          fromField(func(c *catalog) string { return c.country }),
	"address.countryCode":          fromField(func(c *catalog) string { return c.countryCode }),
	"address.timeZone":             fromField(func(c *catalog) string { return c.timeZone }),
	"address.latitude":             coordinate(90),
	"address.longitude":            coordinate(180),
	"address.geohash":              geohashMethod,
	"address.cityPrefix":           fromList(cityPrefixes),
	"address.citySuffix":           fromList(citySuffixes),
	"address.streetSuffix":         fromList(streetSuffixes),
	"address.stateAbbr":            stateAbbr,
	"address.secondaryAddressType": fromList(secondaryAddressTypes),

	// company
	"company.companyName":    companyName,
	"company.companySuffix":  fromCatalog(func(c *catalog) []string { return c.companyTails }),
	"company.buzzword":       fromList(buzzwords),
	"company.buzzwordMiddle": fromList(buzzMiddles),
	"company.buzzwordTail":   fromList(buzzTails),
	"company.bsVerb":         fromList(bsVerbs),
	"company.bsAdj":          fromList(bsAdjectives),
	"company.bsNoun":         fromList(bsNouns),
	"company.catchPhrase":    catchPhrase,
	"company.bs":             bs,
	"company.industry":       fromList(industries),
	"company.profession":     fromList(professions),

	// phone
	"phone.phoneNumber": phoneNumber(func(c *catalog) []string { return c.phoneFormats }),
	"phone.cellNumber":  phoneNumber(func(c *catalog) []string { return c.cellFormats }),

	// color
	"color.color":     fromList(colorNames),
	"color.hexColor":  hexColor,
	"color.rgbColor":  rgb(false),
	"color.rgbaColor": rgb(true),
	"color.hslColor":  hsl(false),
	"color.hslaColor": hsl(true),

	// number
	"number.digit":            digit,
	"number.numberWithFormat": numberWithFormat,
	"number.integer":          integer,
	"number.float":            float,

	// boolean
	"boolean.boolean": boolean,

	// uuid
	"uuid.v4": uuidV4,

	// chrono
	"chrono.dateTime":        dateTime,
	"chrono.date":            date,
	"chrono.time":            clock,
	"chrono.duration":        duration,
	"chrono.dateTimeBefore":  dateTimeBefore,
	"chrono.dateTimeAfter":   dateTimeAfter,
	"chrono.dateTimeBetween": dateTimeBetween,

	// job
	"job.seniority": fromList(seniorities),
	"job.field":     fromList(jobFields),
	"job.position":  fromList(positions),
	"job.title":     jobTitle,

	// filesystem
	"filesystem.fileName":       fileName,
	"filesystem.fileExtension":  fileExtension,
	"filesystem.mimeType":       mimeType,
	"filesystem.dirPath":        dirPathMethod,
	"filesystem.filePath":       filePath,
	"filesystem.semver":         semver,
	"filesystem.semverStable":   semverStable,
	"filesystem.semverUnstable": semverUnstable,

	// currency
	"currency.currencyCode":   fromField(func(c *catalog) string { return c.currency }),
	"currency.currencyName":   fromField(func(c *catalog) string { return currencies[c.currency].name }),
	"currency.currencySymbol": fromField(func(c *catalog) string { return currencies[c.currency].symbol }),

	// http
	"http.rfcStatusCode":   rfcStatusCode,
	"http.validStatusCode": validStatusCode,

	// markdown
	"markdown.italicWord":           italicWord,
	"markdown.boldWord":             boldWord,
	"markdown.link":                 markdownLink,
	"markdown.bulletPoints":         bulletPoints,
	"markdown.listItems":            listItems,
	"markdown.blockQuoteSingleLine": blockQuoteSingleLine,
	"markdown.blockQuoteMultiLine":  blockQuoteMultiLine,
	"markdown.code":                 markdownCode,

	// codes with check digits
	"barcode.isbn":                       isbn,
	"barcode.isbn10":                     isbn10Method,
	"barcode.isbn13":                     isbn13Method,
	"creditcard.creditCardNumber":        creditCardNumber,
	"finance.bic":                        bic,
	"finance.isin":                       isin,
	"administrative.healthInsuranceCode": healthInsuranceCode,
	"automotive.licencePlate":            licencePlate,
}

func init() {
	// time.*, file.* and phone_number.* are accepted spellings of chrono.*,
	// filesystem.* and phone.*.
	aliases := map[string]string{"chrono.": "time.", "filesystem.": "file.", "phone.": "phone_number."}
	for key, m := range methods {
		for from, to := range aliases {
			if rest, ok := strings.CutPrefix(key, from); ok {
				methods[to+rest] = m
			}
		}
	}
}

func pick[T any](r *rand.Rand, xs []T) T {
	return xs[r.IntN(len(xs))]
}

// fromCatalog picks from a locale-specific list.
func fromCatalog(list func(*catalog) []string) method {
	return func(_ *Faker, r *rand.Rand, c *catalog, _ jgd.Arguments) (any, error) {
		return pick(r, list(c)), nil
	}
}

// fromList picks from a list shared by all locales.
func fromList(list []string) method {
	return func(_ *Faker, r *rand.Rand, _ *catalog, _ jgd.Arguments) (any, error) {
		return pick(r, list), nil
	}
}

// fromField returns a constant of the locale.
func fromField(field func(*catalog) string) method {
	return func(_ *Faker, _ *rand.Rand, c *catalog, _ jgd.Arguments) (any, error) {
		return field(c), nil
	}
}

// numerify replaces '#' with a digit and '?' with an upper-case letter.
func numerify(r *rand.Rand, format string) string {
	var b strings.Builder
	for _, ch := range format {
		switch ch {
		case '#':
			b.WriteByte(byte('0' + r.IntN(10)))
		case '?':
			b.WriteByte(byte('A' + r.IntN(26)))
		default:
			b.WriteRune(ch)
		}
	}
	return b.String()
}

func fullName(r *rand.Rand, c *catalog) string {
	first, last := pick(r, c.firstNames), pick(r, c.lastNames)
	if c.code == JAJP {
		return last + first
	}
	return first + " " + last
}

func fullNameMethod(_ *Faker, r *rand.Rand, c *catalog, _ jgd.Arguments) (any, error) {
	return fullName(r, c), nil
}

func nameWithTitle(_ *Faker, r *rand.Rand, c *catalog, _ jgd.Arguments) (any, error) {
	title := pick(r, c.titles)
	name := fullName(r, c)
	if c.code == JAJP {
		return name + title, nil
	}
	return title + " " + name, nil
}

// ascii lower-cases s and drops everything outside [a-z0-9].
func ascii(s string) string {
	var b strings.Builder
	for _, ch := range strings.ToLower(s) {
		if ('a' <= ch && ch <= 'z') || ('0' <= ch && ch <= '9') {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

func username(r *rand.Rand, c *catalog) string {
	first, last := ascii(pick(r, c.firstNames)), ascii(pick(r, c.lastNames))
	if first == "" || last == "" {
		first, last = ascii(pick(r, catalogs[0].firstNames)), ascii(pick(r, catalogs[0].lastNames))
	}
	switch r.IntN(3) {
	case 0:
		return first + "." + last
	case 1:
		return first + "_" + last
	default:
		return first + strconv.Itoa(r.IntN(100))
	}
}

func usernameMethod(_ *Faker, r *rand.Rand, c *catalog, _ jgd.Arguments) (any, error) {
	return username(r, c), nil
}

func freeEmail(_ *Faker, r *rand.Rand, c *catalog, _ jgd.Arguments) (any, error) {
	return username(r, c) + "@" + pick(r, c.freeEmail), nil
}

func safeEmail(_ *Faker, r *rand.Rand, c *catalog, _ jgd.Arguments) (any, error) {
	return username(r, c) + "@example." + pick(r, []string{"com", "net", "org"}), nil
}

const passwordChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*"

func password(_ *Faker, r *rand.Rand, _ *catalog, args jgd.Arguments) (any, error) {
	n := intBetween(r, args, 8, 16)
	b := make([]byte, n)
	for i := range b {
		b[i] = passwordChars[r.IntN(len(passwordChars))]
	}
	return string(b), nil
}

func ipv4(_ *Faker, r *rand.Rand, _ *catalog, _ jgd.Arguments) (any, error) {
	return fmt.Sprintf("%d.%d.%d.%d", 1+r.IntN(254), r.IntN(256), r.IntN(256), 1+r.IntN(254)), nil
}

func ipv6(_ *Faker, r *rand.Rand, _ *catalog, _ jgd.Arguments) (any, error) {
	groups := make([]string, 8)
	for i := range groups {
		groups[i] = fmt.Sprintf("%x", r.IntN(1<<16))
	}
	return strings.Join(groups, ":"), nil
}

func macAddress(_ *Faker, r *rand.Rand, _ *catalog, _ jgd.Arguments) (any, error) {
	octets := make([]string, 6)
	for i := range octets {
		octets[i] = fmt.Sprintf("%02x", r.IntN(256))
	}
	return strings.Join(octets, ":"), nil
}

func url(_ *Faker, r *rand.Rand, c *catalog, _ jgd.Arguments) (any, error) {
	return "https://www." + ascii(pick(r, c.lastNames)+pick(r, loremWords)) + "." + pick(r, c.domainTLDs), nil
}

// intBetween reads an inclusive [lo, hi] size from args, swapping inverted
// bounds and clamping negatives to zero.
func intBetween(r *rand.Rand, args jgd.Arguments, defLo, defHi int) int {
	lo, hi := args.IntRange(defLo, defHi)
	if args.Kind() == jgd.ArgsFixed {
		hi = lo
	}
	lo, hi = max(lo, 0), max(hi, 0)
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}

func words(r *rand.Rand, n int) []string {
	ws := make([]string, n)
	for i := range ws {
		ws[i] = pick(r, loremWords)
	}
	return ws
}

func loremWordList(_ *Faker, r *rand.Rand, _ *catalog, args jgd.Arguments) (any, error) {
	return strings.Join(words(r, intBetween(r, args, 3, 8)), " "), nil
}

func sentence(r *rand.Rand, c *catalog, n int) string {
	if n == 0 {
		return ""
	}
	ws := words(r, n)
	ws[0] = cases.Title(c.tag).String(ws[0])
	return strings.Join(ws, " ") + "."
}

func loremSentence(_ *Faker, r *rand.Rand, c *catalog, args jgd.Arguments) (any, error) {
	return sentence(r, c, intBetween(r, args, 4, 18)), nil
}

func sentences(r *rand.Rand, c *catalog, n int) string {
	ss := make([]string, n)
	for i := range ss {
		ss[i] = sentence(r, c, 4+r.IntN(15))
	}
	return strings.Join(ss, " ")
}

func loremSentences(_ *Faker, r *rand.Rand, c *catalog, args jgd.Arguments) (any, error) {
	return sentences(r, c, intBetween(r, args, 2, 6)), nil
}

func loremParagraph(_ *Faker, r *rand.Rand, c *catalog, args jgd.Arguments) (any, error) {
	return sentences(r, c, intBetween(r, args, 3, 10)), nil
}

func loremParagraphs(_ *Faker, r *rand.Rand, c *catalog, args jgd.Arguments) (any, error) {
	ps := make([]string, intBetween(r, args, 2, 5))
	for i := range ps {
		ps[i] = sentences(r, c, 3+r.IntN(8))
	}
	return strings.Join(ps, "\n\n"), nil
}

func streetAddress(_ *Faker, r *rand.Rand, c *catalog, _ jgd.Arguments) (any, error) {
	return strings.NewReplacer(
		"{n}", strconv.Itoa(1+r.IntN(999)),
		"{s}", pick(r, c.streets),
	).Replace(c.streetFormat), nil
}

func buildingNumber(_ *Faker, r *rand.Rand, _ *catalog, _ jgd.Arguments) (any, error) {
	return strconv.Itoa(1 + r.IntN(999)), nil
}

func secondaryAddress(_ *Faker, r *rand.Rand, _ *catalog, _ jgd.Arguments) (any, error) {
	return fmt.Sprintf("Apt. %d", 1+r.IntN(999)), nil
}

func zipCode(_ *Faker, r *rand.Rand, c *catalog, _ jgd.Arguments) (any, error) {
	return numerify(r, c.zipFormat), nil
}

// coordinate returns values in [-limit, limit] rounded to six decimals.
func coordinate(limit float64) method {
	return func(_ *Faker, r *rand.Rand, _ *catalog, _ jgd.Arguments) (any, error) {
		v := -limit + r.Float64()*2*limit
		return float64(int64(v*1e6)) / 1e6, nil
	}
}

func companyName(_ *Faker, r *rand.Rand, c *catalog, _ jgd.Arguments) (any, error) {
	tail := pick(r, c.companyTails)
	if c.code == JAJP {
		return tail + pick(r, c.lastNames), nil
	}
	if r.IntN(2) == 0 {
		return pick(r, c.lastNames) + " " + tail, nil
	}
	return pick(r, c.lastNames) + " & " + pick(r, c.lastNames), nil
}

func catchPhrase(_ *Faker, r *rand.Rand, _ *catalog, _ jgd.Arguments) (any, error) {
	return cases.Title(catalogs[0].tag).String(pick(r, buzzwords)) + " " + pick(r, buzzMiddles) + " " + pick(r, buzzTails), nil
}

func bs(_ *Faker, r *rand.Rand, _ *catalog, _ jgd.Arguments) (any, error) {
	return pick(r, bsVerbs) + " " + pick(r, bsAdjectives) + " " + pick(r, bsNouns), nil
}

// phoneNumber fills a locale format, or the format given as argument.
func phoneNumber(formats func(*catalog) []string) method {
	return func(_ *Faker, r *rand.Rand, c *catalog, args jgd.Arguments) (any, error) {
		if !args.IsNone() {
			return numerify(r, args.First()), nil
		}
		return numerify(r, pick(r, formats(c))), nil
	}
}

func hexColor(_ *Faker, r *rand.Rand, _ *catalog, _ jgd.Arguments) (any, error) {
	return fmt.Sprintf("#%06x", r.IntN(1<<24)), nil
}

func rgb(alpha bool) method {
	return func(_ *Faker, r *rand.Rand, _ *catalog, _ jgd.Arguments) (any, error) {
		red, green, blue := r.IntN(256), r.IntN(256), r.IntN(256)
		if alpha {
			return fmt.Sprintf("rgba(%d,%d,%d,%.2f)", red, green, blue, float64(r.IntN(101))/100), nil
		}
		return fmt.Sprintf("rgb(%d,%d,%d)", red, green, blue), nil
	}
}

func hsl(alpha bool) method {
	return func(_ *Faker, r *rand.Rand, _ *catalog, _ jgd.Arguments) (any, error) {
		h, s, l := r.IntN(360), r.IntN(101), r.IntN(101)
		if alpha {
			return fmt.Sprintf("hsla(%d,%d%%,%d%%,%.2f)", h, s, l, float64(r.IntN(101))/100), nil
		}
		return fmt.Sprintf("hsl(%d,%d%%,%d%%)", h, s, l), nil
	}
}

func digit(_ *Faker, r *rand.Rand, _ *catalog, _ jgd.Arguments) (any, error) {
	return int64(r.IntN(10)), nil
}

func numberWithFormat(_ *Faker, r *rand.Rand, _ *catalog, args jgd.Arguments) (any, error) {
	return numerify(r, args.Str("###")), nil
}

// boolean returns true with the given percentage, 50 by default.
func boolean(_ *Faker, r *rand.Rand, _ *catalog, args jgd.Arguments) (any, error) {
	ratio := min(max(args.Int(50), 0), 100)
	return r.IntN(100) < ratio, nil
}

func integer(_ *Faker, r *rand.Rand, _ *catalog, args jgd.Arguments) (any, error) {
	lo, hi := args.IntRange(0, 100)
	if args.Kind() == jgd.ArgsFixed {
		hi = lo
	}
	if lo > hi {
		return nil, fmt.Errorf("fake: number.integer%s: %w", args, jgd.ErrInvalidRange)
	}
	if lo == hi {
		return int64(lo), nil
	}
	return int64(lo) + r.Int64N(int64(hi)-int64(lo)+1), nil
}

// float draws from [lo, hi).
func float(_ *Faker, r *rand.Rand, _ *catalog, args jgd.Arguments) (any, error) {
	lo, hi := args.FloatRange(0, 1)
	if lo > hi {
		return nil, fmt.Errorf("fake: number.float%s: %w", args, jgd.ErrInvalidRange)
	}
	if lo == hi {
		return lo, nil
	}
	return lo + r.Float64()*(hi-lo), nil
}

// rngReader adapts the run RNG to io.Reader so uuid draws stay seeded.
type rngReader struct{ r *rand.Rand }

func (rr rngReader) Read(p []byte) (int, error) {
	var buf [8]byte
	for i := 0; i < len(p); i += 8 {
		binary.LittleEndian.PutUint64(buf[:], rr.r.Uint64())
		copy(p[i:], buf[:])
	}
	return len(p), nil
}

func uuidV4(_ *Faker, r *rand.Rand, _ *catalog, _ jgd.Arguments) (any, error) {
	id, err := uuid.NewRandomFromReader(rngReader{r})
	if err != nil {
		return nil, fmt.Errorf("fake: uuid.v4: %w", err)
	}
	return id.String(), nil
}

const (
	day  = 24 * time.Hour
	year = 365 * day
)

// between returns a second-aligned instant in [lo, hi].
func between(r *rand.Rand, lo, hi time.Time) time.Time {
	if !lo.Before(hi) {
		return lo
	}
	span := hi.Unix() - lo.Unix()
	return time.Unix(lo.Unix()+r.Int64N(span+1), 0).UTC()
}

func dateTime(f *Faker, r *rand.Rand, _ *catalog, _ jgd.Arguments) (any, error) {
	return between(r, f.anchor.Add(-5*year), f.anchor).Format(time.RFC3339), nil
}

func date(f *Faker, r *rand.Rand, _ *catalog, _ jgd.Arguments) (any, error) {
	return between(r, f.anchor.Add(-5*year), f.anchor).Format(time.DateOnly), nil
}

func clock(_ *Faker, r *rand.Rand, _ *catalog, _ jgd.Arguments) (any, error) {
	return fmt.Sprintf("%02d:%02d:%02d", r.IntN(24), r.IntN(60), r.IntN(60)), nil
}

func duration(_ *Faker, r *rand.Rand, _ *catalog, _ jgd.Arguments) (any, error) {
	return (time.Duration(r.Int64N(int64(30*day/time.Second))) * time.Second).String(), nil
}

func dateTimeBefore(f *Faker, r *rand.Rand, _ *catalog, args jgd.Arguments) (any, error) {
	hi := args.Time(f.anchor)
	return between(r, hi.Add(-5*year), hi).Format(time.RFC3339), nil
}

func dateTimeAfter(f *Faker, r *rand.Rand, _ *catalog, args jgd.Arguments) (any, error) {
	lo := args.Time(f.anchor)
	return between(r, lo, lo.Add(5*year)).Format(time.RFC3339), nil
}

func dateTimeBetween(f *Faker, r *rand.Rand, _ *catalog, args jgd.Arguments) (any, error) {
	lo, hi := args.TimeRange(f.anchor.Add(-5*year), f.anchor)
	if lo.After(hi) {
		return nil, fmt.Errorf("fake: chrono.dateTimeBetween%s: %w", args, jgd.ErrInvalidRange)
	}
	return between(r, lo, hi).Format(time.RFC3339), nil
}

func jobTitle(_ *Faker, r *rand.Rand, _ *catalog, _ jgd.Arguments) (any, error) {
	return pick(r, seniorities) + " " + pick(r, jobFields) + " " + pick(r, positions), nil
}

func fileName(_ *Faker, r *rand.Rand, _ *catalog, _ jgd.Arguments) (any, error) {
	return pick(r, loremWords) + "_" + pick(r, loremWords) + "." + pick(r, fileTypes).ext, nil
}

func dirPath(r *rand.Rand) string {
	return "/" + strings.Join(words(r, 1+r.IntN(3)), "/")
}

func dirPathMethod(_ *Faker, r *rand.Rand, _ *catalog, _ jgd.Arguments) (any, error) {
	return dirPath(r), nil
}

func fileExtension(_ *Faker, r *rand.Rand, _ *catalog, _ jgd.Arguments) (any, error) {
	return pick(r, fileTypes).ext, nil
}

func mimeType(_ *Faker, r *rand.Rand, _ *catalog, _ jgd.Arguments) (any, error) {
	return pick(r, fileTypes).mime, nil
}

func filePath(_ *Faker, r *rand.Rand, c *catalog, args jgd.Arguments) (any, error) {
	name, _ := fileName(nil, r, c, args)
	return dirPath(r) + "/" + name.(string), nil
}

func semver(_ *Faker, r *rand.Rand, _ *catalog, _ jgd.Arguments) (any, error) {
	v := fmt.Sprintf("%d.%d.%d", r.IntN(10), r.IntN(20), r.IntN(30))
	if r.IntN(4) == 0 {
		v += "-" + pick(r, []string{"alpha", "beta", "rc"}) + "." + strconv.Itoa(1+r.IntN(5))
	}
	return v, nil
}

func semverStable(_ *Faker, r *rand.Rand, _ *catalog, _ jgd.Arguments) (any, error) {
	return fmt.Sprintf("%d.%d.%d", 1+r.IntN(9), r.IntN(20), r.IntN(30)), nil
}

func semverUnstable(_ *Faker, r *rand.Rand, _ *catalog, _ jgd.Arguments) (any, error) {
	return fmt.Sprintf("0.%d.%d-%s.%d", r.IntN(20), r.IntN(30), pick(r, []string{"alpha", "beta", "rc"}), 1+r.IntN(5)), nil
}

func stateAbbr(_ *Faker, r *rand.Rand, c *catalog, _ jgd.Arguments) (any, error) {
	state := pick(r, c.states)
	if abbr, ok := stateAbbrs[state]; ok {
		return abbr, nil
	}
	rs := []rune(strings.ToUpper(state))
	return string(rs[:min(2, len(rs))]), nil
}

func rfcStatusCode(_ *Faker, r *rand.Rand, _ *catalog, _ jgd.Arguments) (any, error) {
	return pick(r, statusCodes).text, nil
}

func validStatusCode(_ *Faker, r *rand.Rand, _ *catalog, _ jgd.Arguments) (any, error) {
	return int64(pick(r, statusCodes).code), nil
}
