package storage

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"restaurant-backend/domain"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1x1 transparent PNG.
var pngBytes = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89,
}

type fakeClient struct {
	puts    map[string][]byte
	types   map[string]string
	deletes []string
}

func newFakeClient() *fakeClient {
	return &fakeClient{puts: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeClient) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.puts[aws.ToString(in.Key)] = data
	f.types[aws.ToString(in.Key)] = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeClient) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deletes = append(f.deletes, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("image", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["image"][0]
}

func TestUploadFile(t *testing.T) {
	client := newFakeClient()
	store := NewAwsS3WithClient(client, "menu-bucket", "us-east-1")

	key, err := store.UploadFile(context.Background(), "menu-item-1", fileHeader(t, "Soup.PNG", pngBytes), "menu-items/", AllowImage...)
	require.NoError(t, err)
	assert.Equal(t, "menu-items/menu-item-1.png", key)
	assert.Equal(t, pngBytes, client.puts[key])
	assert.Equal(t, "image/png", client.types[key])
}

func TestUploadFileRejectsNonImages(t *testing.T) {
	client := newFakeClient()
	store := NewAwsS3WithClient(client, "menu-bucket", "us-east-1")

	_, err := store.UploadFile(context.Background(), "menu-item-1", fileHeader(t, "notes.png", []byte("plain text")), "menu-items", AllowImage...)
	assert.ErrorIs(t, err, domain.ErrInvalidImageFormat)
	assert.Empty(t, client.puts)
}

func TestUpdateFileWithNewExtensionReplacesObject(t *testing.T) {
	client := newFakeClient()
	store := NewAwsS3WithClient(client, "menu-bucket", "us-east-1")

	key, err := store.UpdateFile(context.Background(), "menu-items/menu-item-1.jpg", fileHeader(t, "new.png", pngBytes), AllowImage...)
	require.NoError(t, err)
	assert.Equal(t, "menu-items/menu-item-1.png", key)
	assert.Equal(t, []string{"menu-items/menu-item-1.jpg"}, client.deletes)
}

func TestPublicLinkRoundTrip(t *testing.T) {
	store := NewAwsS3WithClient(newFakeClient(), "menu-bucket", "eu-west-1")

	link := store.GetPublicLinkKey("menu-items/a.png")
	assert.Equal(t, "https://menu-bucket.s3.eu-west-1.amazonaws.com/menu-items/a.png", link)
	assert.Equal(t, "menu-items/a.png", store.GetObjectKeyFromLink(link))
	assert.Empty(t, store.GetObjectKeyFromLink("https://elsewhere.example.com/a.png"))
}

func TestDisabledStorage(t *testing.T) {
	var store AwsS3 = disabledS3{}

	_, err := store.UploadFile(context.Background(), "x", nil, "menu-items")
	assert.ErrorIs(t, err, domain.ErrStorageNotConfigured)
	assert.Empty(t, store.GetObjectKeyFromLink("https://menu-bucket.s3.eu-west-1.amazonaws.com/a.png"))
}
