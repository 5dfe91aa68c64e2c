package calendar

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// cacheKey derives a stable key for one (profile, year, options)
// computation. Results are pure functions of their inputs, so the key
// needs no invalidation beyond profile change.
func cacheKey(year int, profile NatalProfile, opts Options) string {
	payload, _ := json.Marshal(profile)
	sum := sha256.Sum256(payload)
	return fmt.Sprintf("cal:%s:%d:%d:%d", hex.EncodeToString(sum[:8]), year, opts.MinGrade, opts.Limit)
}
