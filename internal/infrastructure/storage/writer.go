// Package storage - бинарный формат записи партий (.zgrp).
package storage

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/TianyuZhao6/Z-Game/internal/domain"
)

const (
	MagicHeader string = `ZGRP` // 4 байта
	Version1    uint32 = 1
)

// ReplayFileHeader - точное представление заголовка файла в памяти.
// binary.Write пишет его целиком: внутри только числа и массивы.
type ReplayFileHeader struct {
	Magic          [4]byte
	Version        uint32
	Seed           int64
	Timestamp      int64
	LevelID        int32
	ActionCount    int32
	PlayerStateLen uint32
}

// ActionHeader - заголовок каждой записи действия.
type ActionHeader struct {
	Tick       int32
	ActionType uint8
	TokenLen   uint8
	PayloadLen uint16
}

type ReplayService struct {
	SaveDir string
}

func NewReplayService(dir string) *ReplayService {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		_ = os.MkdirAll(dir, 0755)
	}
	return &ReplayService{SaveDir: dir}
}

// Save пишет запись партии на диск и возвращает путь к файлу.
func (s *ReplayService) Save(session *domain.ReplaySession) (string, error) {
	filename := fmt.Sprintf("replay_%d_lvl%d_%d.zgrp", session.Seed, session.LevelID, session.Timestamp)
	path := filepath.Join(s.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := writeBinary(f, session); err != nil {
		return "", err
	}
	return path, nil
}

func writeBinary(w io.Writer, s *domain.ReplaySession) error {
	header := ReplayFileHeader{
		Version:        Version1,
		Seed:           s.Seed,
		Timestamp:      s.Timestamp,
		LevelID:        int32(s.LevelID),
		ActionCount:    int32(len(s.Actions)),
		PlayerStateLen: uint32(len(s.PlayerState)),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if len(s.PlayerState) > 0 {
		if _, err := w.Write(s.PlayerState); err != nil {
			return fmt.Errorf("failed to write player state: %w", err)
		}
	}

	for _, act := range s.Actions {
		tokenBytes := []byte(act.Token)
		if len(tokenBytes) > 255 {
			return fmt.Errorf("token too long: %d", len(tokenBytes))
		}
		if len(act.Payload) > 65535 {
			return fmt.Errorf("payload too long: %d", len(act.Payload))
		}

		actHeader := ActionHeader{
			Tick:       int32(act.Tick),
			ActionType: uint8(act.Action),
			TokenLen:   uint8(len(tokenBytes)),
			PayloadLen: uint16(len(act.Payload)),
		}

		if err := binary.Write(w, binary.LittleEndian, &actHeader); err != nil {
			return err
		}
		if _, err := w.Write(tokenBytes); err != nil {
			return err
		}
		if len(act.Payload) > 0 {
			if _, err := w.Write(act.Payload); err != nil {
				return err
			}
		}
	}

	return nil
}
