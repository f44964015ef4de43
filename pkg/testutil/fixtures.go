package testutil

import (
	"github.com/google/uuid"
)

// Fixed UUIDs for deterministic testing
var (
	TestClientID  = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	TestAccountID = uuid.MustParse("00000000-0000-0000-0000-000000000002")
)
