package availability

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	roomTypeRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/roomtype"
)

// memoryStore in-memory реализация репозиториев с той же семантикой пересечений, что и SQL
type memoryStore struct {
	mu        sync.Mutex
	roomTypes map[int64]*domain.RoomType
	bookings  []*domain.Booking
	nextID    int64

	afterCount func()
	createErr  error
}

func newMemoryStore(roomTypes ...*domain.RoomType) *memoryStore {
	s := &memoryStore{roomTypes: make(map[int64]*domain.RoomType)}
	for _, rt := range roomTypes {
		s.roomTypes[rt.ID] = rt
	}
	return s
}

func (s *memoryStore) GetByID(_ context.Context, id int64) (*domain.RoomType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rt, ok := s.roomTypes[id]
	if !ok {
		return nil, roomTypeRepo.ErrRoomTypeNotFound
	}
	cp := *rt
	return &cp, nil
}

func (s *memoryStore) CountOverlapping(_ context.Context, roomTypeID int64, dates domain.DateRange) (int, error) {
	s.mu.Lock()
	count := 0
	for _, b := range s.bookings {
		if b.RoomTypeID == roomTypeID && b.OccupiesCapacity() && b.Range().Overlaps(dates) {
			count++
		}
	}
	s.mu.Unlock()

	if s.afterCount != nil {
		s.afterCount()
	}
	return count, nil
}

func (s *memoryStore) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	cp := *booking
	cp.ID = s.nextID
	s.bookings = append(s.bookings, &cp)
	return &cp, nil
}

func (s *memoryStore) add(b *domain.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	b.ID = s.nextID
	s.bookings = append(s.bookings, b)
}

func (s *memoryStore) confirmedCount(roomTypeID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, b := range s.bookings {
		if b.RoomTypeID == roomTypeID && b.OccupiesCapacity() {
			n++
		}
	}
	return n
}

// fakeTxManager эмулирует advisory-блокировку мьютексом на ключ
type fakeTxManager struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex

	advisoryKeys      []int64
	serializableCalls int
	commitErr         error
}

func newFakeTxManager() *fakeTxManager {
	return &fakeTxManager{locks: make(map[int64]*sync.Mutex)}
}

func (m *fakeTxManager) DoWithAdvisoryLock(ctx context.Context, key int64, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	lock, ok := m.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[key] = lock
	}
	m.advisoryKeys = append(m.advisoryKeys, key)
	m.mu.Unlock()

	lock.Lock()
	defer lock.Unlock()
	return fn(ctx)
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	m.serializableCalls++
	m.mu.Unlock()

	if err := fn(ctx); err != nil {
		return err
	}
	return m.commitErr
}

type countingObserver struct {
	mu       sync.Mutex
	outcomes map[string]int
}

func (o *countingObserver) ObserveAdmission(outcome string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.outcomes == nil {
		o.outcomes = make(map[string]int)
	}
	o.outcomes[outcome]++
}
