package domain

// InstructionRepository defines the interface for reading payment instructions
// from a tabular source.
type InstructionRepository interface {
	// GetInstructions reads every data row of the table, in source order.
	// Rows come back exactly as supplied: blank and partial rows are
	// preserved so the encoder can decide what to skip.
	GetInstructions() ([]PaymentInstruction, error)

	// Source returns a short identifier for the table, used in summaries and logs.
	Source() string
}
