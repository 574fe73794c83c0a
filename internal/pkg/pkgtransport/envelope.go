package pkgtransport

import (
	"encoding/json"

	"github.com/dustinpezley/cityworks/internal/pkg/pkgerror"
)

// StatusOK is the envelope Status of a successful call.
const StatusOK = 0

// Envelope is the response wrapper returned by every Cityworks service.
type Envelope struct {
	Status          int                       `json:"Status"`
	Message         string                    `json:"Message"`
	ErrorMessages   []pkgerror.ServiceMessage `json:"ErrorMessages"`
	WarningMessages []pkgerror.ServiceMessage `json:"WarningMessages"`
	SuccessMessages []pkgerror.ServiceMessage `json:"SuccessMessages"`
	Value           json.RawMessage           `json:"Value"`
}
