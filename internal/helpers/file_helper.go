package helpers

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

func GetFileType(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext != "" {
		return ext[1:]
	}
	return "unknown"
}

// DetectContentType guesses the MIME type from the extension and falls back
// to sniffing the first bytes of the file.
func DetectContentType(path string) (string, error) {
	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); byExt != "" {
		mediaType, _, err := mime.ParseMediaType(byExt)
		if err == nil {
			return mediaType, nil
		}
	}
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()
	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", err
	}
	mediaType, _, err := mime.ParseMediaType(http.DetectContentType(head[:n]))
	if err != nil {
		return "application/octet-stream", nil
	}
	return mediaType, nil
}

// SaveUpload stores the file under a random name in dir, keeping the
// extension, and returns that name with the sha256 of the contents.
func SaveUpload(fileHeader *multipart.FileHeader, dir string) (name string, sha256sum string, err error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", "", err
	}
	defer src.Close()

	name = uuid.NewString()
	if ext := GetFileType(fileHeader.Filename); ext != "unknown" {
		name += "." + ext
	}
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", "", err
	}
	defer func() {
		if closeErr := dst.Close(); err == nil {
			err = closeErr
		}
	}()

	hasher := sha256.New()
	if _, err = io.Copy(io.MultiWriter(dst, hasher), src); err != nil {
		return "", "", err
	}
	return name, hex.EncodeToString(hasher.Sum(nil)), nil
}

func DeleteFile(path string, recurse bool) error {
	if recurse {
		return os.RemoveAll(path)
	}
	return os.Remove(path)
}
