package features

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var (
	// ErrUnknownStorage is returned when no storage is registered for the
	// storage type.
	ErrUnknownStorage = errors.New("unknown storage type")
	// ErrMissingKey is returned when storage has no array for the key.
	ErrMissingKey = errors.New("missing storage key")
)

const (
	// MemoryStorage keeps arrays in process memory.
	MemoryStorage = "memory"
	// BinaryFilesStorage keeps every array in its own little-endian float32
	// file under the storage path.
	BinaryFilesStorage = "binary_files"
)

// Storage reads feature arrays by key.
type Storage interface {
	Read(key string) (Array, error)
}

// OpenFunc opens storage located at path.
type OpenFunc func(path string) (Storage, error)

var storages = struct {
	sync.RWMutex
	m map[string]OpenFunc
}{
	m: map[string]OpenFunc{
		MemoryStorage: func(path string) (Storage, error) {
			return Memory(path), nil
		},
		BinaryFilesStorage: func(path string) (Storage, error) {
			return binaryFiles(path), nil
		},
	},
}

// RegisterStorage makes storage available for provided storage type.
func RegisterStorage(storageType string, fn OpenFunc) {
	storages.Lock()
	defer storages.Unlock()
	storages.m[storageType] = fn
}

func open(storageType, path string) (Storage, error) {
	storages.RLock()
	fn, ok := storages.m[storageType]
	storages.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStorage, storageType)
	}
	return fn(path)
}

// MemoryStore is an in-process storage.
type MemoryStore struct {
	sync.RWMutex
	arrays map[string]Array
}

var memory = struct {
	sync.Mutex
	stores map[string]*MemoryStore
}{
	stores: map[string]*MemoryStore{},
}

// Memory returns in-process storage with provided name. Stores are created
// on first use and live until the process ends.
func Memory(name string) *MemoryStore {
	memory.Lock()
	defer memory.Unlock()
	if s, ok := memory.stores[name]; ok {
		return s
	}
	s := &MemoryStore{arrays: map[string]Array{}}
	memory.stores[name] = s
	return s
}

// Write puts array under the key.
func (s *MemoryStore) Write(key string, arr Array) {
	s.Lock()
	defer s.Unlock()
	s.arrays[key] = arr
}

// Read implements Storage.
func (s *MemoryStore) Read(key string) (Array, error) {
	s.RLock()
	defer s.RUnlock()
	arr, ok := s.arrays[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingKey, key)
	}
	return arr, nil
}

type binaryFiles string

// Read implements Storage.
func (dir binaryFiles) Read(key string) (Array, error) {
	f, err := os.Open(filepath.Join(string(dir), key))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := bufio.NewReader(f)

	var header [2]uint32
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, err
	}
	arr := make(Array, header[0])
	frame := make([]float32, header[1])
	for i := range arr {
		if err := binary.Read(r, binary.LittleEndian, frame); err != nil {
			return nil, err
		}
		arr[i] = make([]float64, len(frame))
		for j, v := range frame {
			arr[i][j] = float64(v)
		}
	}
	return arr, nil
}

// WriteBinary stores array into dir/key file of BinaryFilesStorage.
func WriteBinary(dir, key string, arr Array) error {
	f, err := os.Create(filepath.Join(dir, key))
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	header := [2]uint32{uint32(arr.NumFrames()), uint32(arr.NumFeatures())}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		f.Close()
		return err
	}
	frame := make([]float32, arr.NumFeatures())
	for i := range arr {
		for j, v := range arr[i] {
			frame[j] = float32(v)
		}
		if err := binary.Write(w, binary.LittleEndian, frame); err != nil {
			f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
