package converter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path"
)

type OggTomp3 struct{}

// ConvertToMP3 converts a downloaded voice file to mp3 and removes the
// input file. Files that are not ogg voice notes pass through unchanged.
func (o *OggTomp3) ConvertToMP3(ctx context.Context, inputPath string) (string, error) {
	ext := path.Ext(inputPath)
	if ext != ".ogg" && ext != ".oga" {
		return inputPath, nil
	}

	slog.InfoContext(ctx, "Converting voice message to mp3...", "inputPath", inputPath)

	outputPath, err := convertAudioToMp3(ctx, inputPath)
	defer os.Remove(inputPath)
	if err != nil {
		return "", fmt.Errorf("converting file: %w", err)
	}

	slog.InfoContext(ctx, "Conversion successful", "inputPath", inputPath, "outputPath", outputPath)

	return outputPath, nil
}

func convertAudioToMp3(ctx context.Context, filePath string) (string, error) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return "", fmt.Errorf("looking for `ffmpeg`: %w", err)
	}

	newFilePath := filePath + ".mp3"

	cmd := exec.CommandContext(ctx, "ffmpeg", "-i", filePath, newFilePath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("running `ffmpeg`: %w: %s", err, out)
	}

	return newFilePath, nil
}
