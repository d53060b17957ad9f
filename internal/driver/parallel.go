package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"quoter/internal/diag"
	"quoter/internal/source"
	"quoter/internal/trace"
)

// SourceExt — расширение исходников, которые подбирает QuoteDir.
const SourceExt = ".cs"

// listSourceFiles возвращает отсортированный список всех *.cs файлов в директории
func listSourceFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// скрытые каталоги (.git, .vs) не обходим
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), SourceExt) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// QuoteDir сериализует все *.cs файлы в директории параллельно. Результаты
// идут в порядке путей независимо от jobs.
func QuoteDir(ctx context.Context, dir string, opts Options, jobs int) (*source.FileSet, []FileResult, error) {
	ctx, span := trace.Start(ctx, trace.ScopeDriver, "quote-dir")
	defer span.End(dir)

	files, err := listSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	// FileSet не потокобезопасен: предзагружаем все файлы заранее
	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, nil
	}
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))

	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			// Сохраняем ошибку загрузки для последующей обработки
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	// Настраиваем параллелизм
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, hadError := loadErrors[path]; hadError {
				bag := diag.NewBag(opts.MaxDiagnostics)
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load " + path + ": " + loadErr.Error(),
					Primary:  source.Span{File: source.NoFile},
				})
				results[i] = FileResult{Path: path, FileID: source.NoFile, Bag: bag, Err: loadErr}
				return nil
			}

			results[i] = quoteLoaded(gctx, fileSet.Get(fileIDs[path]), opts)
			return nil
		})
	}

	// Ждём завершения всех горутин
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}

	return fileSet, results, nil
}
