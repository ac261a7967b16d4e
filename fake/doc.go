// Package fake is the built-in fake-data provider of jgd.
//
// A Faker resolves category.method placeholders such as ${name.firstName},
// ${internet.freeEmail} or ${lorem.words(3..5)} against per-locale catalogs.
// Every draw comes from the *rand.Rand handed to Generate, so a seeded run
// produces the same values on every invocation; date and time values are
// relative to a fixed anchor rather than the wall clock.
//
// Supported locales are EN (default), FR_FR, IT_IT, JA_JP, DE_DE, PT_BR,
// AR_SA and CY_GB. Locale codes are matched with golang.org/x/text/language,
// so "fr", "fr-FR" and "FR_FR" select the same catalog.
package fake
