package component

// TTL destroys the entity when Ticks reaches zero.
type TTL struct {
	Ticks int
}

var TTLComponent = NewComponent[TTL]()
