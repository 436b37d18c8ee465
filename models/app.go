package appschema

import (
	"net/http"
	"sync"
	"time"
)

// service connection
type ServiceConnection struct {
	Client *http.Client
	URL    string
}

// google service account, decoded from the base64 env blob.
// RawJSON keeps the full document for the oauth2 JWT config.
type Credentials struct {
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
	ProjectID   string `json:"project_id"`
	RawJSON     []byte `json:"-"`
}

// rate limitation
type RateLimitEntry struct {
	Count     int
	Timestamp time.Time
}

type RequestStore struct {
	Mu       sync.Mutex
	Requests map[string]map[string]*RateLimitEntry
}
