package dbmongo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"viztube/internal/common"
	"viztube/internal/domain"
)

// MediaStorage keeps uploaded videos and images in GridFS.
type MediaStorage struct {
	gridFS *gridfs.Bucket
}

func NewMediaStorage(mongoClient *MongoClient) *MediaStorage {
	return &MediaStorage{
		gridFS: mongoClient.GridFS,
	}
}

type MediaFile struct {
	ID         string               `json:"id"`
	Filename   string               `json:"filename"`
	MimeType   string               `json:"mimeType"`
	Size       int64                `json:"size"`
	FileType   common.MediaFileType `json:"fileType"`
	UploadedBy string               `json:"uploadedBy"`
	UploadedAt time.Time            `json:"uploadedAt"`
}

func (ms *MediaStorage) UploadFile(ctx context.Context, filename, mimeType, uploaderID string, content io.Reader) (*MediaFile, error) {
	fileType := common.DetectFileType(mimeType)
	now := time.Now().UTC()

	metadata := bson.M{
		"fileType":   fileType.String(),
		"mimeType":   mimeType,
		"uploadedBy": uploaderID,
		"uploadedAt": now,
	}

	opts := options.GridFSUpload().SetMetadata(metadata)
	stream, err := ms.gridFS.OpenUploadStream(filename, opts)
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}

	size, err := io.Copy(stream, content)
	if err != nil {
		_ = stream.Abort()
		return nil, fmt.Errorf("file copy failed: %w", err)
	}
	if err := stream.Close(); err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}

	return &MediaFile{
		ID:         stream.FileID.(primitive.ObjectID).Hex(),
		Filename:   filename,
		MimeType:   mimeType,
		Size:       size,
		FileType:   fileType,
		UploadedBy: uploaderID,
		UploadedAt: now,
	}, nil
}

// DownloadFile returns the open stream; the caller closes it. A missing file
// is domain.ErrNotFound.
func (ms *MediaStorage) DownloadFile(ctx context.Context, fileID string) (io.ReadCloser, *MediaFile, error) {
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid file ID: %w", err)
	}

	stream, err := ms.gridFS.OpenDownloadStream(objectID)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, fmt.Errorf("download failed: %w", err)
	}

	return stream, describeFile(fileID, stream.GetFile()), nil
}

func (ms *MediaStorage) DeleteFile(ctx context.Context, fileID string) error {
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return fmt.Errorf("invalid file ID: %w", err)
	}
	if err := ms.gridFS.Delete(objectID); err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func describeFile(fileID string, f *gridfs.File) *MediaFile {
	var metadata bson.M
	if f.Metadata != nil {
		_ = bson.Unmarshal(f.Metadata, &metadata)
	}
	return &MediaFile{
		ID:         fileID,
		Filename:   f.Name,
		MimeType:   getStringFromMap(metadata, "mimeType"),
		Size:       f.Length,
		FileType:   common.MediaFileType(getStringFromMap(metadata, "fileType")),
		UploadedBy: getStringFromMap(metadata, "uploadedBy"),
		UploadedAt: f.UploadDate,
	}
}

func getStringFromMap(m bson.M, key string) string {
	if m == nil {
		return ""
	}
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}
