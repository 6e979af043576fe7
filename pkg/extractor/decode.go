package extractor

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// newDecoder decodes UTF-8 leniently. Ill-formed byte sequences are skipped,
// a leading BOM is dropped and "\r\n" or a lone "\r" ends a line like "\n".
// The BOM decoder would turn ill-formed bytes into U+FFFD, so they are
// removed before it runs.
func newDecoder() transform.Transformer {
	return transform.Chain(
		dropIllFormed{},
		unicode.UTF8BOM.NewDecoder(),
		newlineNormalizer{},
	)
}

// dropIllFormed removes bytes that are not part of a valid UTF-8 sequence.
// A correctly encoded U+FFFD is kept.
type dropIllFormed struct{ transform.NopResetter }

func (dropIllFormed) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if c := src[nSrc]; c < utf8.RuneSelf {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			nSrc++
			continue
		}

		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				// The sequence may continue in the next chunk
				return nDst, nSrc, transform.ErrShortSrc
			}
			nSrc++
			continue
		}

		if nDst+size > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		copy(dst[nDst:], src[nSrc:nSrc+size])
		nDst += size
		nSrc += size
	}
	return nDst, nSrc, nil
}

// newlineNormalizer turns every "\r\n" and lone "\r" into "\n"
type newlineNormalizer struct{ transform.NopResetter }

func (newlineNormalizer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c, width := src[nSrc], 1
		if c == '\r' {
			if nSrc+1 == len(src) && !atEOF {
				// Need the next byte to tell "\r\n" from "\r"
				return nDst, nSrc, transform.ErrShortSrc
			}
			c = '\n'
			if nSrc+1 < len(src) && src[nSrc+1] == '\n' {
				width = 2
			}
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = c
		nDst++
		nSrc += width
	}
	return nDst, nSrc, nil
}
