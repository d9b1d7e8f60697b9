package utils

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

func getS3Client() (*s3.S3, string, error) {
	accessKey := os.Getenv("S3_ACCESS_KEY")
	secretKey := os.Getenv("S3_SECRET_KEY")
	bucket := os.Getenv("S3_BUCKET")
	region := os.Getenv("S3_REGION")
	endpoint := os.Getenv("S3_ENDPOINT")
	if accessKey == "" || secretKey == "" || bucket == "" {
		return nil, "", fmt.Errorf("s3 credentials are not configured")
	}
	if region == "" {
		region = "us-east-1"
	}

	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(region),
		Endpoint:    aws.String(endpoint),
		Credentials: credentials.NewStaticCredentials(accessKey, secretKey, ""),
	})
	if err != nil {
		return nil, "", err
	}
	return s3.New(sess), bucket, nil
}

// UploadFileToS3 stores a user avatar and returns its public URL.
func UploadFileToS3(file []byte, fileName string, folder string) (string, error) {
	filePath := fmt.Sprintf("%s/%s", folder, fileName)

	client, bucket, err := getS3Client()
	if err != nil {
		return "", err
	}

	_, err = client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(filePath),
		Body:          bytes.NewReader(file),
		ContentLength: aws.Int64(int64(len(file))),
		ContentType:   aws.String("image/jpeg"),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("unable to upload file to S3: %v", err)
	}

	return fmt.Sprintf("https://%s%s/%s", bucket, os.Getenv("S3_PUBLIC_SUFFIX"), filePath), nil
}

// S3KeyFromURL extracts the object key from a stored public URL, e.g.
// "avatars/1_abc.jpg" from "https://bucket.example.com/avatars/1_abc.jpg".
// Returns "" when the URL does not parse or carries no path.
func S3KeyFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Path, "/")
}

// DeleteFileFromS3 removes a stored object, used when an avatar is replaced.
func DeleteFileFromS3(filePath string) error {
	client, bucket, err := getS3Client()
	if err != nil {
		return err
	}
	_, err = client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(filePath),
	})
	return err
}
