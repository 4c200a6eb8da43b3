package crt

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// ProbingAlgorithm - Custom error to inform that something went wrong concerning a probing algorithm
type ProbingAlgorithm struct {
	msg string
}

// Error - Used to notify that probing wrapped around the whole table
func (P ProbingAlgorithm) Error() string {
	if P.msg == "" {
		return "probing algorithm exhausted"
	}
	return P.msg
}

// UnknownTechnique - Custom error to inform that a collision resolution technique is not supported
type UnknownTechnique struct {
	msg string
}

// Error - Used to notify an unsupported collision resolution technique
func (U UnknownTechnique) Error() string {
	if U.msg == "" {
		return "unknown collision resolution technique"
	}
	return U.msg
}

// ForeignBlock - Custom error to inform that a block handed to an allocator was not allocated by it
type ForeignBlock struct {
	msg string
}

// Error - Used to notify that a block does not belong to the allocator
func (F ForeignBlock) Error() string {
	if F.msg == "" {
		return "block not owned by allocator"
	}
	return F.msg
}
