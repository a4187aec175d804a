package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// hashKey joins the settings that influence a rendered image into one key.
// The parts are JSON-encoded before hashing, so ("png", "dot/x") and
// ("png/dot", "x") never collide. [RenderKey] uses the "render" prefix.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return prefix + ":" + hex.EncodeToString(sum[:])
}

// Hash returns the hex SHA-256 of data. Graph files are hashed with it
// before they become part of a render key, and [FileCache] derives entry
// paths from it.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
