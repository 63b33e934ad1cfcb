package shared

import (
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
)

// CommonMetadataMiddleware stamps every produced message with the owning
// module and a processing timestamp so downstream consumers can attribute
// events without parsing payloads.
func CommonMetadataMiddleware(module string) message.HandlerMiddleware {
	return func(h message.HandlerFunc) message.HandlerFunc {
		return func(msg *message.Message) ([]*message.Message, error) {
			produced, err := h(msg)
			if err != nil {
				return nil, err
			}
			processedAt := time.Now().UTC().Format(time.RFC3339Nano)
			for _, m := range produced {
				m.Metadata.Set("module", module)
				m.Metadata.Set("processed_at", processedAt)
			}
			return produced, nil
		}
	}
}
