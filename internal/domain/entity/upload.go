package entity

// UploadBucket is the destination folder of an uploaded image.
type UploadBucket string

const (
	BucketAvatars UploadBucket = "avatars"
	BucketPets    UploadBucket = "pets"
	BucketPosts   UploadBucket = "posts"
)

// IsValid reports whether b is a known bucket.
func (b UploadBucket) IsValid() bool {
	switch b {
	case BucketAvatars, BucketPets, BucketPosts:
		return true
	}
	return false
}

// UploadedImage describes a stored, compressed image.
type UploadedImage struct {
	Key         string
	URL         string
	ContentType string
	Size        int64
	Width       int
	Height      int
}
