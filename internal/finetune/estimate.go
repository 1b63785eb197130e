package finetune

import (
	"bufio"
	"os"
	"strings"

	linkedoptErrors "linkedopt/internal/errors"
	"linkedopt/internal/types"

	"github.com/tidwall/gjson"
)

// EstimateCost projects the token volume and price of fine-tuning on
// the given JSONL dataset. Tokens are approximated as one per four
// characters of input plus output, and the price assumes the default
// epoch count.
func EstimateCost(datasetPath, model string) (types.FineTuneEstimate, error) {
	if model == "" {
		model = BaseModel
	}

	estimate := types.FineTuneEstimate{
		Model:  model,
		Epochs: trainEpochs,
	}

	f, err := os.Open(datasetPath)
	if err != nil {
		if os.IsNotExist(err) {
			// An absent dataset estimates to zero, matching an empty one.
			return estimate, nil
		}
		return types.FineTuneEstimate{}, linkedoptErrors.NewIOError(linkedoptErrors.ErrCodeFileNotReadable,
			"Could not open dataset file", err)
	}
	defer f.Close()

	var totalChars int
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !gjson.Valid(line) {
			continue
		}
		estimate.NumExamples++
		totalChars += len(gjson.Get(line, "input").Raw)
		totalChars += len(gjson.Get(line, "output").String())
	}
	if err := scanner.Err(); err != nil {
		return types.FineTuneEstimate{}, linkedoptErrors.NewIOError(linkedoptErrors.ErrCodeFileNotReadable,
			"Could not read dataset file", err)
	}

	estimate.EstimatedTokens = totalChars / 4
	estimate.EstimatedCostUSD = float64(estimate.EstimatedTokens) / 1000 * costPer1KTok * trainEpochs
	return estimate, nil
}
