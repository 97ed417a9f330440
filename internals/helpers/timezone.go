// file: internals/helpers/timezone.go
package helper

import "time"

// JakartaLoc mengembalikan zona WIB; fallback offset tetap kalau tzdata
// tidak tersedia di image.
func JakartaLoc() *time.Location {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		return time.FixedZone("WIB", 7*3600)
	}
	return loc
}

// NowJakarta adalah time.Now di zona WIB.
func NowJakarta() time.Time {
	return time.Now().In(JakartaLoc())
}
