package api

import (
	"fmt"
	"io"
	"mime/multipart"
	"time"
)

const FolderMenuItems = "menu-items"

func (server *Server) uploadFileToCloudinary(key string, value string, folder string, file *multipart.FileHeader) (string, error) {
	if server.fileStore == nil {
		return "", fmt.Errorf("file storage is not configured")
	}

	currentFile, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer currentFile.Close()

	fileBytes, err := io.ReadAll(currentFile)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	fileName := fmt.Sprintf("%s_%s_%d", key, value, time.Now().Unix())

	uploadedFileURL, err := server.fileStore.UploadFile(fileBytes, fileName, folder)
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return uploadedFileURL, nil
}
