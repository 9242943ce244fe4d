package models

// UploadedProof is a payment proof file held in memory until submission. It
// is never written to the session store.
type UploadedProof struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}
