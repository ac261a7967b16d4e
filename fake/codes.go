package fake

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/syssam/jgd"
)

func digits(r *rand.Rand, n int) []int {
	ds := make([]int, n)
	for i := range ds {
		ds[i] = r.IntN(10)
	}
	return ds
}

func joinDigits(ds []int) string {
	var b strings.Builder
	for _, d := range ds {
		b.WriteByte(byte('0' + d))
	}
	return b.String()
}

// isbn10Check returns the ISBN-10 check character of the first nine digits.
func isbn10Check(ds []int) string {
	sum := 0
	for i, d := range ds {
		sum += (10 - i) * d
	}
	switch c := (11 - sum%11) % 11; c {
	case 10:
		return "X"
	default:
		return strconv.Itoa(c)
	}
}

// ean13Check returns the EAN-13 check digit of the first twelve digits.
func ean13Check(ds []int) int {
	sum := 0
	for i, d := range ds {
		if i%2 == 1 {
			d *= 3
		}
		sum += d
	}
	return (10 - sum%10) % 10
}

func isbn10(r *rand.Rand) string {
	ds := digits(r, 9)
	return joinDigits(ds) + isbn10Check(ds)
}

func isbn13(r *rand.Rand) string {
	ds := append([]int{9, 7, 8 + r.IntN(2)}, digits(r, 9)...)
	return joinDigits(ds) + strconv.Itoa(ean13Check(ds))
}

func isbn(_ *Faker, r *rand.Rand, _ *catalog, _ jgd.Arguments) (any, error) {
	if r.IntN(2) == 0 {
		return isbn10(r), nil
	}
	return isbn13(r), nil
}

func isbn10Method(_ *Faker, r *rand.Rand, _ *catalog, _ jgd.Arguments) (any, error) {
	return isbn10(r), nil
}

func isbn13Method(_ *Faker, r *rand.Rand, _ *catalog, _ jgd.Arguments) (any, error) {
	return isbn13(r), nil
}

// luhnCheck returns the digit that makes ds followed by it pass the Luhn test.
func luhnCheck(ds []int) int {
	sum := 0
	for i := len(ds) - 1; i >= 0; i-- {
		d := ds[i]
		if (len(ds)-i)%2 == 1 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	return (10 - sum%10) % 10
}

var cardPrefixes = []struct {
	prefix []int
	length int
}{
	{[]int{4}, 16},
	{[]int{5, 1}, 16},
	{[]int{5, 5}, 16},
	{[]int{3, 4}, 15},
	{[]int{3, 7}, 15},
	{[]int{6, 0, 1, 1}, 16},
}

// creditCardNumber returns a Luhn-valid Visa, Mastercard, Amex or Discover
// number.
func creditCardNumber(_ *Faker, r *rand.Rand, _ *catalog, _ jgd.Arguments) (any, error) {
	card := pick(r, cardPrefixes)
	ds := append(append([]int(nil), card.prefix...), digits(r, card.length-len(card.prefix)-1)...)
	return joinDigits(ds) + strconv.Itoa(luhnCheck(ds)), nil
}

const (
	upper    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	alnum    = upper + "0123456789"
	geohash  = "0123456789bcdefghjkmnpqrstuvwxyz"
	plateSet = "ABCDEFGHJKLMNPQRSTVWXYZ"
)

func randString(r *rand.Rand, set string, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = set[r.IntN(len(set))]
	}
	return string(b)
}

var isinCountries = []string{"US", "GB", "FR", "DE", "IT", "JP", "BR", "CH", "NL", "CA"}

// bic returns an 8 or 11 character SWIFT code.
func bic(_ *Faker, r *rand.Rand, c *catalog, _ jgd.Arguments) (any, error) {
	code := randString(r, upper, 4) + c.countryCode + randString(r, alnum, 2)
	if r.IntN(2) == 0 {
		code += randString(r, alnum, 3)
	}
	return code, nil
}

// isinCheck expands letters to two digits (A=10 .. Z=35) and returns the Luhn
// check digit of the result.
func isinCheck(body string) int {
	var ds []int
	for _, ch := range body {
		if ch >= 'A' && ch <= 'Z' {
			v := int(ch-'A') + 10
			ds = append(ds, v/10, v%10)
			continue
		}
		ds = append(ds, int(ch-'0'))
	}
	return luhnCheck(ds)
}

func isin(_ *Faker, r *rand.Rand, _ *catalog, _ jgd.Arguments) (any, error) {
	body := pick(r, isinCountries) + randString(r, alnum, 9)
	return body + strconv.Itoa(isinCheck(body)), nil
}

// healthInsuranceCode returns a French social security number: sex, birth
// year and month, department, commune, order and a mod-97 key.
func healthInsuranceCode(_ *Faker, r *rand.Rand, _ *catalog, _ jgd.Arguments) (any, error) {
	body := strconv.Itoa(1+r.IntN(2)) +
		pad(r.IntN(100), 2) +
		pad(1+r.IntN(12), 2) +
		pad(1+r.IntN(95), 2) +
		pad(1+r.IntN(999), 3) +
		pad(1+r.IntN(999), 3)
	n, err := strconv.ParseInt(body, 10, 64)
	if err != nil {
		return nil, err
	}
	return body + pad(int(97-n%97), 2), nil
}

func pad(n, width int) string {
	s := strconv.Itoa(n)
	return strings.Repeat("0", max(0, width-len(s))) + s
}

// licencePlate returns a plate in the French SIV format, AB-123-CD.
func licencePlate(_ *Faker, r *rand.Rand, _ *catalog, _ jgd.Arguments) (any, error) {
	return randString(r, plateSet, 2) + "-" + pad(1+r.IntN(999), 3) + "-" + randString(r, plateSet, 2), nil
}

// geohashMethod encodes a random coordinate at the given precision, 5 by
// default.
func geohashMethod(_ *Faker, r *rand.Rand, _ *catalog, args jgd.Arguments) (any, error) {
	precision := min(max(args.Int(5), 1), 12)
	return encodeGeohash(-90+r.Float64()*180, -180+r.Float64()*360, precision), nil
}

func encodeGeohash(lat, lon float64, precision int) string {
	latLo, latHi, lonLo, lonHi := -90.0, 90.0, -180.0, 180.0
	var b strings.Builder
	bit, ch, even := 0, 0, true
	for b.Len() < precision {
		if even {
			mid := (lonLo + lonHi) / 2
			if lon >= mid {
				ch |= 1 << (4 - bit)
				lonLo = mid
			} else {
				lonHi = mid
			}
		} else {
			mid := (latLo + latHi) / 2
			if lat >= mid {
				ch |= 1 << (4 - bit)
				latLo = mid
			} else {
				latHi = mid
			}
		}
		even = !even
		if bit++; bit == 5 {
			b.WriteByte(geohash[ch])
			bit, ch = 0, 0
		}
	}
	return b.String()
}
