// file: internals/helpers/kelas.go
package helper

import (
	"regexp"
	"strings"
)

var (
	sepRe   = regexp.MustCompile(`[\s\-]+`)
	multiUs = regexp.MustCompile(`_+`)
)

// NormalizeKelas menyamakan format label kelas: trim, uppercase,
// spasi/strip → underscore ("XI SIJA 2" → "XI_SIJA_2").
func NormalizeKelas(s string) string {
	up := strings.ToUpper(strings.TrimSpace(s))
	up = sepRe.ReplaceAllString(up, "_")
	return multiUs.ReplaceAllString(up, "_")
}

// KelasVariants membangun varian label kelas yang mungkin tersimpan di DB:
// spasi/underscore/strip, case berbeda-beda. Data lama tidak konsisten.
func KelasVariants(kelas string) []string {
	raw := strings.TrimSpace(kelas)
	if raw == "" {
		return nil
	}
	upper := strings.ToUpper(raw)
	set := map[string]struct{}{}
	out := make([]string, 0, 6)
	add := func(v string) {
		if v == "" {
			return
		}
		if _, ok := set[v]; ok {
			return
		}
		set[v] = struct{}{}
		out = append(out, v)
	}

	add(raw)
	add(upper)
	add(strings.ToLower(raw))
	add(NormalizeKelas(raw))
	add(strings.ReplaceAll(upper, " ", ""))
	add(strings.ReplaceAll(upper, " ", "-"))
	return out
}
