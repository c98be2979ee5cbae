package contextkeys

type RequestId struct{}

type TransactionContextKey struct{}
