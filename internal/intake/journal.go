package intake

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/tinytelemetry/tecvac/internal/model"
)

const (
	defaultFileMode = 0644
	defaultDirMode  = 0755
)

// Entry is one accepted record as stored in the journal.
type Entry struct {
	Seq        uint64               `json:"seq"`
	ReceiptID  string               `json:"receiptId"`
	AcceptedAt time.Time            `json:"acceptedAt"`
	Record     model.EmployeeRecord `json:"record"`
}

// Journal appends accepted employee records to a file, one JSON entry per
// line. It satisfies model.IntakeSink.
type Journal struct {
	mu      sync.Mutex
	path    string
	file    *os.File
	nextSeq uint64
	now     func() time.Time
}

// OpenJournal creates or opens a journal at path. A partially written
// trailing line from an earlier crash is dropped.
func OpenJournal(path string) (*Journal, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("intake: journal path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), defaultDirMode); err != nil {
		return nil, fmt.Errorf("intake: mkdir: %w", err)
	}

	entries, validSize, err := readEntries(path)
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, defaultFileMode)
	if err != nil {
		return nil, fmt.Errorf("intake: open journal: %w", err)
	}
	if err := f.Truncate(validSize); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("intake: truncate journal: %w", err)
	}
	if _, err := f.Seek(0, io.SeekEnd); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("intake: seek journal: %w", err)
	}

	var maxSeq uint64
	for _, e := range entries {
		if e.Seq > maxSeq {
			maxSeq = e.Seq
		}
	}

	return &Journal{
		path:    path,
		file:    f,
		nextSeq: maxSeq + 1,
		now:     time.Now,
	}, nil
}

// Append persists record and returns its entry.
func (j *Journal) Append(record model.EmployeeRecord) (Entry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.file == nil {
		return Entry{}, errors.New("intake: journal is closed")
	}

	receipt := newReceipt(j.now)
	e := Entry{
		Seq:        j.nextSeq,
		ReceiptID:  receipt.ID,
		AcceptedAt: receipt.AcceptedAt,
		Record:     record,
	}
	line, err := json.Marshal(e)
	if err != nil {
		return Entry{}, fmt.Errorf("intake: marshal entry: %w", err)
	}
	line = append(line, '\n')

	if _, err := j.file.Write(line); err != nil {
		return Entry{}, fmt.Errorf("intake: write entry: %w", err)
	}
	if err := j.file.Sync(); err != nil {
		return Entry{}, fmt.Errorf("intake: sync entry: %w", err)
	}
	j.nextSeq++
	return e, nil
}

// Accept appends record. A write failure is logged and the record is still
// acknowledged, since the form has no failure path after its guard.
func (j *Journal) Accept(record model.EmployeeRecord) model.Receipt {
	e, err := j.Append(record)
	if err != nil {
		log.Printf("intake: journal append failed for %s: %v", record.EmployeeID, err)
		return newReceipt(j.now)
	}
	log.Printf("intake: journaled employee %s (%s) seq=%d receipt=%s",
		record.FullName(), record.EmployeeID, e.Seq, e.ReceiptID)
	return model.Receipt{ID: e.ReceiptID, AcceptedAt: e.AcceptedAt}
}

// Entries reads back every complete entry in file order.
func (j *Journal) Entries() ([]Entry, error) {
	j.mu.Lock()
	path := j.path
	j.mu.Unlock()

	entries, _, err := readEntries(path)
	return entries, err
}

// Close closes the underlying file.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.file == nil {
		return nil
	}
	err := j.file.Close()
	j.file = nil
	return err
}

// readEntries decodes complete lines from path. It stops at the first
// partial or malformed line and reports the byte length of what it kept.
func readEntries(path string) ([]Entry, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("intake: open for read: %w", err)
	}
	defer f.Close()

	var (
		entries []Entry
		size    int64
	)
	reader := bufio.NewReader(f)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, 0, fmt.Errorf("intake: read journal: %w", err)
		}
		if len(line) == 0 || line[len(line)-1] != '\n' {
			return entries, size, nil
		}

		var e Entry
		if uerr := json.Unmarshal(line, &e); uerr != nil {
			return entries, size, nil
		}
		entries = append(entries, e)
		size += int64(len(line))

		if errors.Is(err, io.EOF) {
			return entries, size, nil
		}
	}
}
