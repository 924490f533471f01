// Package unicase decodes and encodes UTF-8 sequences and maps code points to
// upper case with a sorted lookup table.
//
// The codec follows the 1992 FSS-UTF design: six table rows describe
// sequences of one to six bytes, so values up to 0x7fffffff round-trip. No
// attempt is made to reject surrogates or values above U+10FFFF; the only
// validation is that continuation bytes carry the 10xxxxxx marker and that no
// value is encoded with more bytes than it needs.
//
// Case mapping is one-directional (lower to upper) and covers Latin, Greek,
// Cyrillic, Armenian, Latin Extended Additional, Greek Extended and the
// full-width ASCII block. A code point without a row maps to itself.
//
// Two string conversions are provided. StrToUpper writes into a fresh buffer
// and therefore handles mappings that change the encoded length, such as
// U+0131 (dotless i) to "I". UpperInPlace rewrites the caller's buffer and
// stops at the first mapping that would change the length; callers relying on
// destructive conversion must accept that contract. FullUpper applies the
// complete Unicode special casing rules for text the table does not cover.
package unicase
