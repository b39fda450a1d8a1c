package seeds

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/bibliotech/recommendation-service/internal/domain"
)

type bookSeed struct {
	name        string
	description string
	category    string
	docType     string
	copies      int
}

var bookSeeds = []bookSeed{
	{"Clean Code", "writing readable maintainable software with refactoring and unit tests", "software engineering", "book", 4},
	{"The Pragmatic Programmer", "practical software craftsmanship tips for maintainable code and careers", "software engineering", "book", 3},
	{"Introduction to Algorithms", "algorithms data structures sorting graphs dynamic programming complexity", "algorithms", "book", 5},
	{"Algorithm Design Manual", "practical algorithms graph problems heuristics and data structures", "algorithms", "book", 2},
	{"Database System Concepts", "relational databases transactions indexing query processing and recovery", "databases", "book", 3},
	{"Designing Data-Intensive Applications", "distributed databases replication partitioning stream processing and consistency", "databases", "book", 6},
	{"Computer Networks", "network protocols routing congestion control and the internet stack", "networks", "book", 2},
	{"TCP/IP Illustrated", "detailed walkthrough of internet protocols packets routing and transport", "networks", "book", 1},
	{"Artificial Intelligence: A Modern Approach", "search planning probabilistic reasoning and machine learning agents", "artificial intelligence", "book", 4},
	{"Deep Learning", "neural networks backpropagation convolutional architectures and machine learning theory", "artificial intelligence", "book", 2},
	{"Pattern Recognition and Machine Learning", "bayesian machine learning classification regression and graphical models", "artificial intelligence", "book", 0},
	{"Operating System Concepts", "processes threads scheduling memory management and file systems", "operating systems", "book", 3},
	{"ACM Computing Surveys", "survey articles across computer science research topics", "research", "journal", 1},
	{"IEEE Software", "software engineering practice articles and industry case studies", "research", "journal", 2},
}

type userSeed struct {
	id         string
	department string
	level      string
	recent     []domain.RecentDoc
	read       []domain.ReadDoc
}

var userSeeds = []userSeed{
	{
		id: "alice@campus.edu", department: "CS", level: "level5",
		recent: []domain.RecentDoc{
			{Name: "Clean Code", Category: "software engineering", Type: "book"},
			{Name: "Designing Data-Intensive Applications", Category: "databases", Type: "book"},
			{Name: "Introduction to Algorithms", Category: "algorithms", Type: "book"},
		},
		read: []domain.ReadDoc{{Name: "Clean Code", Rating: 5}},
	},
	{
		id: "bob@campus.edu", department: "CS", level: "level5",
		recent: []domain.RecentDoc{
			{Name: "Designing Data-Intensive Applications", Category: "databases", Type: "book"},
			{Name: "Database System Concepts", Category: "databases", Type: "book"},
			{Name: "ACM Computing Surveys", Category: "research", Type: "journal"},
		},
		read: []domain.ReadDoc{{Name: "Database System Concepts", Rating: 4}},
	},
	{
		id: "chloe@campus.edu", department: "CS", level: "level3",
		recent: []domain.RecentDoc{
			{Name: "Introduction to Algorithms", Category: "algorithms", Type: "book"},
			{Name: "Algorithm Design Manual", Category: "algorithms", Type: "book"},
		},
		read: []domain.ReadDoc{{Name: "Introduction to Algorithms", Rating: 5}},
	},
	{
		id: "dimitri@campus.edu", department: "AI", level: "level5",
		recent: []domain.RecentDoc{
			{Name: "Deep Learning", Category: "artificial intelligence", Type: "book"},
			{Name: "Artificial Intelligence: A Modern Approach", Category: "artificial intelligence", Type: "book"},
			{Name: "IEEE Software", Category: "research", Type: "journal"},
		},
		read: []domain.ReadDoc{{Name: "Deep Learning", Rating: 5}},
	},
	{
		id: "emma@campus.edu", department: "AI", level: "level4",
		recent: []domain.RecentDoc{
			{Name: "Artificial Intelligence: A Modern Approach", Category: "artificial intelligence", Type: "book"},
			{Name: "Pattern Recognition and Machine Learning", Category: "artificial intelligence", Type: "book"},
		},
		read: []domain.ReadDoc{{Name: "Artificial Intelligence: A Modern Approach", Rating: 4}},
	},
	{
		id: "farid@campus.edu", department: "Networks", level: "level4",
		recent: []domain.RecentDoc{
			{Name: "Computer Networks", Category: "networks", Type: "book"},
			{Name: "TCP/IP Illustrated", Category: "networks", Type: "book"},
			{Name: "Operating System Concepts", Category: "operating systems", Type: "book"},
		},
	},
	{
		id: "gina@campus.edu", department: "CS", level: "level3",
		recent: []domain.RecentDoc{
			{Name: "Clean Code", Category: "software engineering", Type: "book"},
			{Name: "The Pragmatic Programmer", Category: "software engineering", Type: "book"},
		},
		read: []domain.ReadDoc{{Name: "The Pragmatic Programmer", Rating: 4}},
	},
	{
		id: "hassan@campus.edu", department: "Networks", level: "level5",
		recent: []domain.RecentDoc{
			{Name: "TCP/IP Illustrated", Category: "networks", Type: "book"},
			{Name: "Designing Data-Intensive Applications", Category: "databases", Type: "book"},
		},
	},
}

// Setup populates an empty database with a small CS library corpus. The
// comment ratings are drawn from a fixed-seed rng so reseeded databases
// rank identically.
func Setup(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	rng := rand.New(rand.NewSource(42))

	logger.Info().Msg("truncating existing data")
	if _, err := pool.Exec(ctx, `TRUNCATE users, books`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	logger.Info().Int("count", len(bookSeeds)).Msg("inserting books")
	if err := seedBooks(ctx, pool, rng); err != nil {
		return fmt.Errorf("seed books: %w", err)
	}

	logger.Info().Int("count", len(userSeeds)).Msg("inserting users")
	if err := seedUsers(ctx, pool); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	logger.Info().Msg("seeding complete")
	return nil
}

func seedBooks(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand) error {
	rows := []string{}
	args := []any{}

	for _, b := range bookSeeds {
		comments := randomComments(rng)

		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7))
		args = append(args, uuid.NewString(), b.name, b.description, b.category, b.docType, comments, b.copies)
	}

	query := "INSERT INTO books (id, name, description, category, doc_type, comments, copies) VALUES " +
		strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

func seedUsers(ctx context.Context, pool *pgxpool.Pool) error {
	rows := []string{}
	args := []any{}

	for _, u := range userSeeds {
		read := u.read
		if read == nil {
			read = []domain.ReadDoc{}
		}

		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5))
		args = append(args, u.id, u.department, u.level, u.recent, read)
	}

	query := "INSERT INTO users (id, department, study_level, recent_docs, read_docs) VALUES " +
		strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

func randomComments(rng *rand.Rand) []domain.Comment {
	comments := make([]domain.Comment, rng.Intn(4))
	for i := range comments {
		comments[i] = domain.Comment{Rating: float64(rng.Intn(6))}
	}
	return comments
}
