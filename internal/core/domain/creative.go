package domain

// CreativeSpec is the rendered ad content: an image plus copy. The
// image is referenced by a local file path and uploaded by the live
// client; the dry-run client never touches the filesystem.
type CreativeSpec struct {
	Name         string
	ImagePath    string
	PrimaryText  string
	Headline     string
	Description  string
	CallToAction string
	Link         string
}
