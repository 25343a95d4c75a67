package api

// FileEntry описывает один элемент листинга директории
type FileEntry struct {
	Name     string `json:"name"`
	Path     string `json:"path"` // виртуальный путь относительно корня, через "/"
	Type     string `json:"type"` // dir, video, music, text, other
	Size     int64  `json:"size"`
	Modified int64  `json:"modified"` // unix seconds
	IsDir    bool   `json:"is_dir"`
}
