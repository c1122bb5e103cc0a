package interfaces

import "atelier_auto/internal/domain/entities"

// IDocumentRenderer abstracts the PDF generation backend.
//
// Render is a pure, synchronous function of its inputs: same estimate and
// context, same byte stream. It holds no state between calls and is safe
// to invoke concurrently; callers driving a live preview discard stale
// results in favor of the latest input state.
//
// The letterhead logo is a required asset. A missing or undecodable logo
// fails the whole render, the renderer never produces a partial document.
type IDocumentRenderer interface {
	Render(estimate entities.Estimate, vehicle entities.VehicleSnapshot, client entities.ClientSnapshot, logo []byte) ([]byte, error)
}

// ILetterheadProvider supplies the binary letterhead asset for rendered
// documents (e.g. from disk or object storage).
type ILetterheadProvider interface {
	Letterhead() ([]byte, error)
}
