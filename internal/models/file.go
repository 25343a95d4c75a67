package models

// FileType drives how a file is served
type FileType string

const (
	FileTypeDir   FileType = "dir"
	FileTypeVideo FileType = "video"
	FileTypeMusic FileType = "music"
	FileTypeText  FileType = "text"
	FileTypeOther FileType = "other"
)

// IsMedia reports whether files of this type are served with range support
func (t FileType) IsMedia() bool {
	return t == FileTypeVideo || t == FileTypeMusic
}
