// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package patterns

import "github.com/pdiddy/regex-extractor/pkg/types"

// definition is the uncompiled form of a Rule. Groups is the number of
// capturing groups the expression declares; each alternative that needs
// normalization wraps its whole surface form in exactly one group.
type definition struct {
	category types.Category
	expr     string
	groups   int
}

// Every expression is compiled with the case-insensitive flag. RE2 has no
// lookbehind, so a "not preceded by a word character" guard is written as a
// consumed (?:^|\W) prefix that stays outside the capturing group.
const (
	// emailExpr caps the local part at 64 characters and keeps domain labels
	// alphanumeric at both ends.
	emailExpr = `\b[a-z0-9](?:[a-z0-9._%+-]{0,62}[a-z0-9])?` +
		`@[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?(?:\.[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?)*` +
		`\.[a-z]{2,63}\b`

	// urlExpr accepts http(s):// or www. hosts; the continuation stops at whitespace.
	urlExpr = `\b(?:https?://|www\.)` +
		`(?:[a-z0-9\-._~%]+(?::[a-z0-9\-._~%!$&'()*+,;=]*)?@)?` +
		`[a-z0-9\-_~%]+(?:\.[a-z0-9\-_~%]+)+` +
		`(?::\d{1,5})?` +
		`(?:[/?#][^\s<>"]*)?\b`

	// phoneExpr covers +CC international numbers, a parenthesized area code,
	// and plain local numbers.
	phoneExpr = `\+\d{1,4}(?:[-. ]?(?:\(\d{1,4}\)|\d{2,4})){2,4}\b` +
		`|\(\d{2,4}\)[-. ]?\d{3,4}[-. ]?\d{3,4}\b` +
		`|\b\d{2,5}[-. ]?\d{3,4}[-. ]?\d{3,4}\b`

	// creditCardIssuerExpr: Visa 16 or 13 digits, Mastercard 16, Amex 15.
	// A single space or dash may sit between any two digits.
	creditCardIssuerExpr = `\b(?:4(?:[- ]?\d){15}` +
		`|4(?:[- ]?\d){12}` +
		`|5[- ]?[1-5](?:[- ]?\d){14}` +
		`|3[- ]?[47](?:[- ]?\d){13})\b`

	// creditCardLengthExpr: 13-19 digits with optional single separators.
	creditCardLengthExpr = `\b\d(?:[- ]?\d){12,18}\b`

	// timeExpr: group 1 is a 12-hour time with meridiem, group 2 a 24-hour time.
	timeExpr = `\b((?:1[0-2]|0?[1-9]):[0-5]\d ?[ap]m)\b` +
		`|\b((?:2[0-3]|[01]?\d):[0-5]\d)\b`

	htmlTagExpr = `</?[a-z][a-z0-9]*(?:\s+[^<>]*)?/?>`

	// hashtagExpr: group 1 holds the tag; at least one letter or underscore.
	hashtagExpr = `(?:^|\W)(#\w*[a-z_]\w*)`

	// currencyExpr: group 1 is a symbol amount, group 2 a code amount.
	currencyExpr = `(?:^|\W)([$€£] ?(?:\d{1,3}(?:,\d{3})+|\d+)(?:\.\d{2})?)\b` +
		`|\b([A-Z]{3} ?(?:\d{1,3}(?:,\d{3})+|\d+)(?:\.\d{2})?)\b`
)

// definitions returns the rule set for the given credit card policy, in
// canonical category order.
func definitions(policy types.CreditCardPolicy) []definition {
	cardExpr := creditCardIssuerExpr
	if policy == types.PolicyLength {
		cardExpr = creditCardLengthExpr
	}

	return []definition{
		{category: types.CategoryEmails, expr: emailExpr},
		{category: types.CategoryURLs, expr: urlExpr},
		{category: types.CategoryPhoneNumbers, expr: phoneExpr},
		{category: types.CategoryCreditCards, expr: cardExpr},
		{category: types.CategoryTimes, expr: timeExpr, groups: 2},
		{category: types.CategoryHTMLTags, expr: htmlTagExpr},
		{category: types.CategoryHashtags, expr: hashtagExpr, groups: 1},
		{category: types.CategoryCurrency, expr: currencyExpr, groups: 2},
	}
}
