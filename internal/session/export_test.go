package session

// Test-only aliases so external test packages can reach the unexported
// constructor without widening the production API.
type StoreParams = storeParams

var NewStore = newStore
