// Package filetype decides how a stored file is served.
package filetype

import (
	"io"
	"io/fs"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/iudanet/gophmedia/internal/models"
	"github.com/iudanet/gophmedia/internal/server/pathres"
	"github.com/iudanet/gophmedia/pkg/api"
)

// sniffLen matches the amount of data http.DetectContentType considers
const sniffLen = 512

// mpegTSPacket is the size of one MPEG transport stream packet
const mpegTSPacket = 188

var byExtension = map[string]models.FileType{
	// video
	".mp4":  models.FileTypeVideo,
	".m4v":  models.FileTypeVideo,
	".mkv":  models.FileTypeVideo,
	".webm": models.FileTypeVideo,
	".mov":  models.FileTypeVideo,
	".avi":  models.FileTypeVideo,
	".wmv":  models.FileTypeVideo,
	".flv":  models.FileTypeVideo,
	".mpg":  models.FileTypeVideo,
	".mpeg": models.FileTypeVideo,
	".m2ts": models.FileTypeVideo,
	".3gp":  models.FileTypeVideo,
	".ogv":  models.FileTypeVideo,
	// music
	".mp3":  models.FileTypeMusic,
	".flac": models.FileTypeMusic,
	".wav":  models.FileTypeMusic,
	".ogg":  models.FileTypeMusic,
	".oga":  models.FileTypeMusic,
	".m4a":  models.FileTypeMusic,
	".aac":  models.FileTypeMusic,
	".opus": models.FileTypeMusic,
	".wma":  models.FileTypeMusic,
	".ape":  models.FileTypeMusic,
	// text
	".txt":  models.FileTypeText,
	".md":   models.FileTypeText,
	".log":  models.FileTypeText,
	".json": models.FileTypeText,
	".yaml": models.FileTypeText,
	".yml":  models.FileTypeText,
	".toml": models.FileTypeText,
	".ini":  models.FileTypeText,
	".csv":  models.FileTypeText,
	".xml":  models.FileTypeText,
	".srt":  models.FileTypeText,
	".vtt":  models.FileTypeText,
	".ass":  models.FileTypeText,
	".ssa":  models.FileTypeText,
	".nfo":  models.FileTypeText,
	".cue":  models.FileTypeText,
	// other, known without sniffing
	".jpg":  models.FileTypeOther,
	".jpeg": models.FileTypeOther,
	".png":  models.FileTypeOther,
	".gif":  models.FileTypeOther,
	".pdf":  models.FileTypeOther,
	".zip":  models.FileTypeOther,
}

// Classify returns the type of the regular file at path. The extension table
// wins; ".ts" (TypeScript or MPEG-TS) and unknown extensions are sniffed.
func Classify(path string) models.FileType {
	ext := strings.ToLower(filepath.Ext(path))
	if t, ok := byExtension[ext]; ok {
		return t
	}

	f, err := os.Open(path)
	if err != nil {
		return models.FileTypeOther
	}
	defer f.Close() //nolint:errcheck

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return models.FileTypeOther
	}
	return Sniff(head[:n])
}

// Sniff classifies content by its leading bytes
func Sniff(head []byte) models.FileType {
	if len(head) == 0 {
		return models.FileTypeOther
	}
	if isMPEGTS(head) {
		return models.FileTypeVideo
	}

	ct := http.DetectContentType(head)
	switch {
	case strings.HasPrefix(ct, "video/"):
		return models.FileTypeVideo
	case strings.HasPrefix(ct, "audio/"), ct == "application/ogg":
		return models.FileTypeMusic
	case strings.HasPrefix(ct, "text/plain"):
		return models.FileTypeText
	}
	return models.FileTypeOther
}

// isMPEGTS checks the sync byte of the first two transport packets
func isMPEGTS(head []byte) bool {
	if head[0] != 0x47 {
		return false
	}
	if len(head) > mpegTSPacket {
		return head[mpegTSPacket] == 0x47
	}
	// ровно один пакет
	return len(head) == mpegTSPacket
}

// ContentType returns the MIME type sent with a file of the given kind
func ContentType(path string, t models.FileType) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mkv":
		return "video/x-matroska"
	case ".m2ts":
		return "video/mp2t"
	case ".ts":
		if t == models.FileTypeVideo {
			return "video/mp2t"
		}
		return byType(t)
	case ".flac":
		return "audio/flac"
	case ".srt":
		return "application/x-subrip"
	case ".vtt":
		return "text/vtt; charset=utf-8"
	}
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct
	}
	return byType(t)
}

func byType(t models.FileType) string {
	switch t {
	case models.FileTypeVideo:
		return "video/mp4"
	case models.FileTypeMusic:
		return "audio/mpeg"
	case models.FileTypeText:
		return "text/plain; charset=utf-8"
	}
	return "application/octet-stream"
}

// Entry builds a listing entry for path, which must already be resolved
// against rootCanon. The name comes from path, so a followed symlink keeps
// its own name rather than the target's.
func Entry(rootCanon, path string, info fs.FileInfo) api.FileEntry {
	e := api.FileEntry{
		Name:     filepath.Base(path),
		Path:     pathres.Rel(rootCanon, path),
		Modified: info.ModTime().Unix(),
	}
	if info.IsDir() {
		e.IsDir = true
		e.Type = string(models.FileTypeDir)
		return e
	}
	e.Size = info.Size()
	e.Type = string(Classify(path))
	return e
}
