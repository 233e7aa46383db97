package arena

// Predefined slot type tags used by the value layer.
const (
	// TypeIntRep tags integer representations.
	TypeIntRep uint32 = 1
	// TypeRandState tags random generator states.
	TypeRandState uint32 = 2
)
