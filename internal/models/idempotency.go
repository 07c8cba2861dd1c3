package models

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

const (
	IdempotencyStatusProcessFinished = "finished"
	IdempotencyStatusProcessPending  = "pending"

	TTLIdempotency = 24 * time.Hour
)

// Idempotency is the cached outcome of a mutating request keyed by the
// client's X-Idempotency-Key.
type Idempotency struct {
	CacheKey string `json:"cacheKey"`

	StatusProcess string `json:"status"`

	// Fingerprint ties the key to one request payload
	Fingerprint     string            `json:"fingerprint"`
	HTTPStatusCode  int               `json:"httpStatusCode"`
	ResponseBody    string            `json:"responseBody"`
	ResponseHeaders map[string]string `json:"responseHeaders"`
}

// NewIdempotency fingerprints method, path and body so a key cannot be
// replayed against another endpoint.
func NewIdempotency(key, status, method, path string, requestBody []byte) *Idempotency {
	h := sha256.New()
	h.Write([]byte(method))
	h.Write([]byte(path))
	h.Write(requestBody)

	return &Idempotency{
		CacheKey:      IdempotencyCacheKey(key),
		StatusProcess: status,
		Fingerprint:   hex.EncodeToString(h.Sum(nil)),
	}
}

func IdempotencyCacheKey(key string) string {
	return fmt.Sprintf("fin-ledger:idempotency:%s", key)
}

func (i *Idempotency) IsFinished() bool {
	return i.StatusProcess == IdempotencyStatusProcessFinished
}

func (i *Idempotency) SetResponse(httpStatusCode int, responseHeaders map[string]string, responseBody string) {
	i.HTTPStatusCode = httpStatusCode
	i.ResponseHeaders = responseHeaders
	i.ResponseBody = responseBody
	i.StatusProcess = IdempotencyStatusProcessFinished
}
