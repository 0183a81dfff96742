package serviceprovider

import "github.com/google/uuid"

// Every fixture carries a value, so that two instances are never the same
// pointer, even when built from a zero value.

type IServiceOne interface {
	GetServiceTwo() IServiceTwo
}
type ServiceOne struct {
	value      string
	serviceTwo IServiceTwo
}

func NewServiceOne(serviceTwo IServiceTwo) *ServiceOne {
	return &ServiceOne{
		value:      uuid.NewString(),
		serviceTwo: serviceTwo,
	}
}

func (s *ServiceOne) GetServiceTwo() IServiceTwo {
	return s.serviceTwo
}

type IServiceTwo interface {
	GetServiceThree() IServiceThree
}
type ServiceTwo struct {
	value        string
	serviceThree IServiceThree
}

func NewServiceTwo(serviceThree IServiceThree) *ServiceTwo {
	return &ServiceTwo{
		value:        uuid.NewString(),
		serviceThree: serviceThree,
	}
}

func (s *ServiceTwo) GetServiceThree() IServiceThree {
	return s.serviceThree
}

type IServiceThree interface {
	GetValue() int
}

// ServiceThree has no constructor on purpose in most tests.
type ServiceThree struct {
	value string
}

func NewServiceThree() *ServiceThree {
	return &ServiceThree{value: uuid.NewString()}
}

func (s *ServiceThree) GetValue() int {
	return 3
}

// registerServices maps IServiceOne -> IServiceTwo -> IServiceThree.
func registerServices(c *Container) {
	Add[IServiceOne, *ServiceOne](c)
	Provide[*ServiceOne](c, NewServiceOne)
	Add[IServiceTwo, *ServiceTwo](c)
	Provide[*ServiceTwo](c, NewServiceTwo)
	Add[IServiceThree, *ServiceThree](c)
}

type CustomError struct{}

func (c CustomError) Error() string {
	return "custom error"
}

var customError = &CustomError{}

type FailingService struct {
	value string
}

func NewFailingService() (*FailingService, error) {
	return nil, customError
}

func NewFailingServiceSafe() (*FailingService, error) {
	return &FailingService{value: uuid.NewString()}, nil
}

type DependsOnFailing struct {
	failing *FailingService
}

func NewDependsOnFailing(failing *FailingService) *DependsOnFailing {
	return &DependsOnFailing{failing: failing}
}

type Config struct {
	SomeUrl string
}

func NewConfig(someUrl string) *Config {
	return &Config{SomeUrl: someUrl}
}

// Resolution error fixtures: RootClass -> InnerClass1 -> InnerClass2.

type RootClass struct {
	innerClass1 *InnerClass1
}

func NewRootClass(innerClass1 *InnerClass1) *RootClass {
	return &RootClass{innerClass1: innerClass1}
}

type InnerClass1 struct {
	innerClass2 *InnerClass2
}

func NewInnerClass1(innerClass2 *InnerClass2) *InnerClass1 {
	return &InnerClass1{innerClass2: innerClass2}
}

type InnerClass2 struct {
	value string
}

// Generic fixtures.

type IRepository[T any] interface {
	Kind() string
}

type SqlRepository[T any] struct {
	value string
}

func NewSqlRepository[T any]() *SqlRepository[T] {
	return &SqlRepository[T]{value: uuid.NewString()}
}

func (r *SqlRepository[T]) Kind() string {
	return "sql"
}

type FakeSqlRepository[T any] struct {
	value string
}

func (r *FakeSqlRepository[T]) Kind() string {
	return "fake"
}

type Entity struct{ ID int }
type BaseEntity struct{ ID int }
type Vehicle struct{ ID int }

type IRepositoryHandler interface {
	FakeRepository() IRepository[Entity]
	Repository() IRepository[BaseEntity]
	VehicleRepository() IRepository[Vehicle]
}

type RepositoryHandler struct {
	vehicleRepository IRepository[Vehicle]
	fakeRepository    IRepository[Entity]
	repository        IRepository[BaseEntity]
}

func NewRepositoryHandler(
	vehicleRepository IRepository[Vehicle],
	fakeRepository IRepository[Entity],
	repository IRepository[BaseEntity],
) *RepositoryHandler {
	return &RepositoryHandler{
		vehicleRepository: vehicleRepository,
		fakeRepository:    fakeRepository,
		repository:        repository,
	}
}

func (h *RepositoryHandler) FakeRepository() IRepository[Entity] {
	return h.fakeRepository
}

func (h *RepositoryHandler) Repository() IRepository[BaseEntity] {
	return h.repository
}

func (h *RepositoryHandler) VehicleRepository() IRepository[Vehicle] {
	return h.vehicleRepository
}

// Factory fixtures: a slice of parts aggregated by a factory.

type IPart interface {
	PartName() string
}

type PartOne struct {
	testPartClass *TestPartClass
}

func NewPartOne(testPartClass *TestPartClass) *PartOne {
	return &PartOne{testPartClass: testPartClass}
}

func (p *PartOne) PartName() string { return "one" }

type PartTwo struct {
	value string
}

func (p *PartTwo) PartName() string { return "two" }

type TestPartClass struct {
	value string
}

type FuncTestClass struct {
	parts []IPart
}

func NewFuncTestClass(parts []IPart) *FuncTestClass {
	return &FuncTestClass{parts: parts}
}
