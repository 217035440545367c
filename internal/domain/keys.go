package domain

// KeyPrefix namespaces every key skysearch writes to the shared store.
const KeyPrefix = "skysearch:"
