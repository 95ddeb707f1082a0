package llm

import (
	"context"
	"fmt"
)

var simulatedResponses = []string{
	"I have analyzed the data and found significant trends.",
	"Based on your request, I have executed the necessary tools.",
	"Here is the summary you requested based on the provided context.",
	"The calculation is complete. The result is within expected parameters.",
}

// Simulator picks a canned response by prompt length, so identical prompts
// always produce identical responses.
type Simulator struct {
	responses []string
}

func NewSimulator() Simulator {
	return Simulator{
		responses: simulatedResponses,
	}
}

func (s Simulator) Complete(_ context.Context, prompt string, model string) (string, error) {
	index := len(prompt) % len(s.responses)
	return fmt.Sprintf("[%s Response]: %s", model, s.responses[index]), nil
}
