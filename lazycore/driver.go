package lazycore

// Driver identifies a query source backend.
type Driver string

const (
	DriverNull   Driver = "null"
	DriverHTTP   Driver = "http"
	DriverRedis  Driver = "redis"
	DriverNATS   Driver = "nats"
	DriverSQL    Driver = "sql"
	DriverDynamo Driver = "dynamodb"
)
