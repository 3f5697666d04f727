package lalamove

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"time"
)

// timestampLayout is ISO-8601 UTC with milliseconds, matching what the
// upstream expects inside the signed message.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// signRequest computes the request signature over the canonical message
//
//	timestamp \r\n METHOD \r\n path \r\n \r\n body
//
// The empty line stands where a query-string component would go; this
// integration never signs query strings. The signature is the base64
// encoding of HMAC-SHA256 over the UTF-8 bytes of the message.
func signRequest(secret, method, path, body string, now time.Time) (timestamp, signature string) {
	timestamp = now.UTC().Format(timestampLayout)

	message := timestamp + "\r\n" + method + "\r\n" + path + "\r\n\r\n" + body

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(message))
	signature = base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return timestamp, signature
}
