package models

// UploadRequest is the wire envelope for pushing a document to the remote
// store. ExpectedVersion carries the uploader's last known remote version so
// the server can reject a stale overwrite with a conflict.
type UploadRequest struct {
	Document        SaveDocument `json:"document"`
	ExpectedVersion uint64       `json:"expected_version"`
}

// UploadResponse is returned by the remote store after a successful upload.
type UploadResponse struct {
	RemoteState
}

// VersionResponse is returned by the remote version probe. A zero version
// means no remote document exists yet.
type VersionResponse struct {
	RemoteState
}
