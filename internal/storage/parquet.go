// Package storage persists the pipeline tables as parquet files, either on
// the local filesystem or in cloud object storage.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/restunugroho/demand-forecast/internal/cloudwriter"
	"github.com/restunugroho/demand-forecast/internal/models"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/reader"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

const parquetParallelism = 4

// Store writes and reads the event, demand and feature tables.
type Store struct {
	basePath           string
	folder             string
	cloudWriterFactory cloudwriter.CloudWriterFactory
	cloudBucketName    string
}

func NewStore(cfg *models.Config) (*Store, error) {
	s := &Store{
		basePath: cfg.OutputPath,
		folder:   cfg.OutputFolder,
	}

	if cfg.OutputDestination != "local" && cfg.OutputDestination != "" {
		var factory cloudwriter.CloudWriterFactory
		var err error

		switch cfg.CloudStorage.Provider {
		case "s3":
			factory, err = cloudwriter.NewS3WriterFactory(cfg.CloudStorage.Region)
		default:
			return nil, fmt.Errorf("unsupported cloud storage provider: %s", cfg.CloudStorage.Provider)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud writer factory: %w", err)
		}

		s.cloudWriterFactory = factory
		s.cloudBucketName = cfg.CloudStorage.BucketName
	}

	return s, nil
}

// WriteOrderEvents persists the raw event table under the given file name.
func (s *Store) WriteOrderEvents(name string, events []models.OrderEvent) error {
	return s.write(name, new(models.OrderEvent), func(pw *writer.ParquetWriter) error {
		for i := range events {
			if err := pw.Write(events[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

// ReadOrderEvents loads a previously written event table.
func (s *Store) ReadOrderEvents(name string) ([]models.OrderEvent, error) {
	pr, fr, err := s.openReader(name, new(models.OrderEvent))
	if err != nil {
		return nil, err
	}
	defer fr.Close()
	defer pr.ReadStop()

	events := make([]models.OrderEvent, pr.GetNumRows())
	if err := pr.Read(&events); err != nil {
		return nil, fmt.Errorf("failed to read events from %s: %w", name, err)
	}
	return events, nil
}

// WriteDemand persists the hourly demand table.
func (s *Store) WriteDemand(name string, records []models.DemandRecord) error {
	return s.write(name, new(models.DemandRecord), func(pw *writer.ParquetWriter) error {
		for i := range records {
			if err := pw.Write(records[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

// ReadDemand loads a previously written demand table.
func (s *Store) ReadDemand(name string) ([]models.DemandRecord, error) {
	pr, fr, err := s.openReader(name, new(models.DemandRecord))
	if err != nil {
		return nil, err
	}
	defer fr.Close()
	defer pr.ReadStop()

	records := make([]models.DemandRecord, pr.GetNumRows())
	if err := pr.Read(&records); err != nil {
		return nil, fmt.Errorf("failed to read demand from %s: %w", name, err)
	}
	return records, nil
}

// WriteFeatures persists the enriched feature table.
func (s *Store) WriteFeatures(name string, rows []models.FeatureRow) error {
	return s.write(name, new(models.FeatureRow), func(pw *writer.ParquetWriter) error {
		for i := range rows {
			if err := pw.Write(rows[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

// ReadFeatures loads a previously written feature table.
func (s *Store) ReadFeatures(name string) ([]models.FeatureRow, error) {
	pr, fr, err := s.openReader(name, new(models.FeatureRow))
	if err != nil {
		return nil, err
	}
	defer fr.Close()
	defer pr.ReadStop()

	rows := make([]models.FeatureRow, pr.GetNumRows())
	if err := pr.Read(&rows); err != nil {
		return nil, fmt.Errorf("failed to read features from %s: %w", name, err)
	}
	return rows, nil
}

// Path returns the local path a table file resolves to.
func (s *Store) Path(name string) string {
	return filepath.Join(s.basePath, s.folder, name)
}

func (s *Store) write(name string, rowType interface{}, writeRows func(*writer.ParquetWriter) error) error {
	fw, err := s.openWriter(name)
	if err != nil {
		return err
	}

	pw, err := writer.NewParquetWriter(fw, rowType, parquetParallelism)
	if err != nil {
		fw.Close()
		return fmt.Errorf("failed to create parquet writer for %s: %w", name, err)
	}

	if err := writeRows(pw); err != nil {
		fw.Close()
		return fmt.Errorf("failed to write rows to %s: %w", name, err)
	}
	if err := pw.WriteStop(); err != nil {
		fw.Close()
		return fmt.Errorf("failed to finalize %s: %w", name, err)
	}
	if err := fw.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}
	return nil
}

func (s *Store) openWriter(name string) (source.ParquetFile, error) {
	if s.cloudWriterFactory != nil {
		objectPath := filepath.Join(s.folder, name)
		cw, err := s.cloudWriterFactory.NewWriter(s.cloudBucketName, objectPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud file writer: %w", err)
		}
		return NewCloudParquetFile(cw), nil
	}

	dir := filepath.Join(s.basePath, s.folder)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, err
	}
	fw, err := local.NewLocalFileWriter(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to create local file writer: %w", err)
	}
	return fw, nil
}

func (s *Store) openReader(name string, rowType interface{}) (*reader.ParquetReader, source.ParquetFile, error) {
	if s.cloudWriterFactory != nil {
		return nil, nil, fmt.Errorf("cannot read %s: the cloud storage destination is write-only, read from a local copy", name)
	}
	fr, err := local.NewLocalFileReader(s.Path(name))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	pr, err := reader.NewParquetReader(fr, rowType, parquetParallelism)
	if err != nil {
		fr.Close()
		return nil, nil, fmt.Errorf("failed to create parquet reader for %s: %w", name, err)
	}
	return pr, fr, nil
}

// CloudParquetFile adapts a CloudWriter to the parquet source interface.
// It is write-only: reads and seeks from the end are not supported.
type CloudParquetFile struct {
	cloudWriter cloudwriter.CloudWriter
	offset      int64
}

func NewCloudParquetFile(cw cloudwriter.CloudWriter) *CloudParquetFile {
	return &CloudParquetFile{cloudWriter: cw}
}

func (c *CloudParquetFile) Open(name string) (source.ParquetFile, error) {
	return c, nil
}

func (c *CloudParquetFile) Create(name string) (source.ParquetFile, error) {
	return c, nil
}

func (c *CloudParquetFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		c.offset = offset
	case io.SeekCurrent:
		c.offset += offset
	case io.SeekEnd:
		return 0, fmt.Errorf("seek from end not supported for cloud storage")
	}
	return c.offset, nil
}

func (c *CloudParquetFile) Read(p []byte) (n int, err error) {
	return 0, fmt.Errorf("read not supported for cloud storage")
}

func (c *CloudParquetFile) Write(p []byte) (n int, err error) {
	return c.cloudWriter.Write(p)
}

func (c *CloudParquetFile) Close() error {
	return c.cloudWriter.Close()
}
