package services

import (
	"time"

	"jewelry_store/internal/cache"
	"jewelry_store/internal/models"

	"gorm.io/gorm"
)

// Map-backed fakes standing in for the gorm repositories. Lookups return
// gorm.ErrRecordNotFound for missing rows, matching the real contract.

type fakeJewelryRepo struct {
	items     map[uint]models.Jewelry
	nextID    uint
	updateErr map[uint]error // fail Update for specific ids
}

func newFakeJewelryRepo() *fakeJewelryRepo {
	return &fakeJewelryRepo{items: make(map[uint]models.Jewelry), updateErr: make(map[uint]error)}
}

func (r *fakeJewelryRepo) Create(jewelry *models.Jewelry) error {
	r.nextID++
	jewelry.ID = r.nextID
	r.items[jewelry.ID] = *jewelry
	return nil
}

func (r *fakeJewelryRepo) GetByID(id uint) (*models.Jewelry, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := item
	return &copy, nil
}

func (r *fakeJewelryRepo) GetByType(jewelryType string) ([]models.Jewelry, error) {
	var out []models.Jewelry
	for _, item := range r.items {
		if item.Type == jewelryType {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeJewelryRepo) GetByCategory(category string) ([]models.Jewelry, error) {
	var out []models.Jewelry
	for _, item := range r.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeJewelryRepo) Update(jewelry *models.Jewelry) error {
	if err := r.updateErr[jewelry.ID]; err != nil {
		return err
	}
	if _, ok := r.items[jewelry.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.items[jewelry.ID] = *jewelry
	return nil
}

func (r *fakeJewelryRepo) Delete(id uint) error {
	if _, ok := r.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeJewelryRepo) GetAll() ([]models.Jewelry, error) {
	var out []models.Jewelry
	for _, item := range r.items {
		out = append(out, item)
	}
	return out, nil
}

func (r *fakeJewelryRepo) stock(id uint) int {
	return r.items[id].StockQuantity
}

type fakeOrderRepo struct {
	orders map[uint]models.Order
	nextID uint
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uint]models.Order)}
}

func (r *fakeOrderRepo) Create(order *models.Order) error {
	r.nextID++
	order.ID = r.nextID
	r.orders[order.ID] = *order
	return nil
}

func (r *fakeOrderRepo) GetByID(id uint) (*models.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := order
	return &copy, nil
}

func (r *fakeOrderRepo) GetByStatus(status string) ([]models.Order, error) {
	var out []models.Order
	for _, order := range r.orders {
		if order.Status == status {
			out = append(out, order)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) GetByCustomerID(customerID uint) ([]models.Order, error) {
	var out []models.Order
	for _, order := range r.orders {
		if order.CustomerID == customerID {
			out = append(out, order)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) GetByEmployeeID(employeeID uint) ([]models.Order, error) {
	var out []models.Order
	for _, order := range r.orders {
		if order.EmployeeID != nil && *order.EmployeeID == employeeID {
			out = append(out, order)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) Update(order *models.Order) error {
	if _, ok := r.orders[order.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.orders[order.ID] = *order
	return nil
}

func (r *fakeOrderRepo) Delete(id uint) error {
	if _, ok := r.orders[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.orders, id)
	return nil
}

func (r *fakeOrderRepo) GetAll() ([]models.Order, error) {
	var out []models.Order
	for _, order := range r.orders {
		out = append(out, order)
	}
	return out, nil
}

type fakeOrderItemRepo struct {
	items  map[uint]models.OrderItem
	nextID uint
}

func newFakeOrderItemRepo() *fakeOrderItemRepo {
	return &fakeOrderItemRepo{items: make(map[uint]models.OrderItem)}
}

func (r *fakeOrderItemRepo) Create(orderItem *models.OrderItem) error {
	r.nextID++
	orderItem.ID = r.nextID
	r.items[orderItem.ID] = *orderItem
	return nil
}

func (r *fakeOrderItemRepo) GetByID(id uint) (*models.OrderItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := item
	return &copy, nil
}

func (r *fakeOrderItemRepo) GetByOrderID(orderID uint) ([]*models.OrderItem, error) {
	var out []*models.OrderItem
	for _, item := range r.items {
		if item.OrderID == orderID {
			copy := item
			out = append(out, &copy)
		}
	}
	return out, nil
}

func (r *fakeOrderItemRepo) GetByJewelryID(jewelryID uint) ([]*models.OrderItem, error) {
	var out []*models.OrderItem
	for _, item := range r.items {
		if item.JewelryID == jewelryID {
			copy := item
			out = append(out, &copy)
		}
	}
	return out, nil
}

func (r *fakeOrderItemRepo) Update(orderItem *models.OrderItem) error {
	if _, ok := r.items[orderItem.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.items[orderItem.ID] = *orderItem
	return nil
}

func (r *fakeOrderItemRepo) Delete(id uint) error {
	if _, ok := r.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeOrderItemRepo) DeleteByOrderID(orderID uint) error {
	for id, item := range r.items {
		if item.OrderID == orderID {
			delete(r.items, id)
		}
	}
	return nil
}

type fakePaymentRepo struct {
	payments map[uint]models.Payment
	nextID   uint
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[uint]models.Payment)}
}

func (r *fakePaymentRepo) Create(payment *models.Payment) error {
	r.nextID++
	payment.ID = r.nextID
	r.payments[payment.ID] = *payment
	return nil
}

func (r *fakePaymentRepo) GetByID(id uint) (*models.Payment, error) {
	payment, ok := r.payments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := payment
	return &copy, nil
}

func (r *fakePaymentRepo) GetByOrderID(orderID uint) ([]*models.Payment, error) {
	var out []*models.Payment
	for _, payment := range r.payments {
		if payment.OrderID == orderID {
			copy := payment
			out = append(out, &copy)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) GetByStatus(status string) ([]*models.Payment, error) {
	var out []*models.Payment
	for _, payment := range r.payments {
		if payment.Status == status {
			copy := payment
			out = append(out, &copy)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) Update(payment *models.Payment) error {
	if _, ok := r.payments[payment.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.payments[payment.ID] = *payment
	return nil
}

func (r *fakePaymentRepo) Delete(id uint) error {
	if _, ok := r.payments[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.payments, id)
	return nil
}

func (r *fakePaymentRepo) DeleteByOrderID(orderID uint) error {
	for id, payment := range r.payments {
		if payment.OrderID == orderID {
			delete(r.payments, id)
		}
	}
	return nil
}

func (r *fakePaymentRepo) GetAll() ([]*models.Payment, error) {
	var out []*models.Payment
	for _, payment := range r.payments {
		copy := payment
		out = append(out, &copy)
	}
	return out, nil
}

type fakeCustomerRepo struct {
	customers map[uint]models.Customer
	nextID    uint
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uint]models.Customer)}
}

func (r *fakeCustomerRepo) Create(customer *models.Customer) error {
	r.nextID++
	customer.ID = r.nextID
	r.customers[customer.ID] = *customer
	return nil
}

func (r *fakeCustomerRepo) GetByID(id uint) (*models.Customer, error) {
	customer, ok := r.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := customer
	return &copy, nil
}

func (r *fakeCustomerRepo) GetByNIF(nif string) (*models.Customer, error) {
	for _, customer := range r.customers {
		if customer.NIF == nif {
			copy := customer
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCustomerRepo) GetByEmail(email string) (*models.Customer, error) {
	for _, customer := range r.customers {
		if customer.Email == email {
			copy := customer
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCustomerRepo) Update(customer *models.Customer) error {
	if _, ok := r.customers[customer.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.customers[customer.ID] = *customer
	return nil
}

func (r *fakeCustomerRepo) Delete(id uint) error {
	if _, ok := r.customers[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) GetAll() ([]models.Customer, error) {
	var out []models.Customer
	for _, customer := range r.customers {
		out = append(out, customer)
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employees map[uint]models.Employee
	nextID    uint
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[uint]models.Employee)}
}

func (r *fakeEmployeeRepo) Create(employee *models.Employee) error {
	r.nextID++
	employee.ID = r.nextID
	r.employees[employee.ID] = *employee
	return nil
}

func (r *fakeEmployeeRepo) GetByID(id uint) (*models.Employee, error) {
	employee, ok := r.employees[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := employee
	return &copy, nil
}

func (r *fakeEmployeeRepo) GetByNIF(nif string) (*models.Employee, error) {
	for _, employee := range r.employees {
		if employee.NIF == nif {
			copy := employee
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeEmployeeRepo) GetByRole(role string) ([]models.Employee, error) {
	var out []models.Employee
	for _, employee := range r.employees {
		if employee.Role == role {
			out = append(out, employee)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) Update(employee *models.Employee) error {
	if _, ok := r.employees[employee.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.employees[employee.ID] = *employee
	return nil
}

func (r *fakeEmployeeRepo) Delete(id uint) error {
	if _, ok := r.employees[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.employees, id)
	return nil
}

func (r *fakeEmployeeRepo) GetAll() ([]models.Employee, error) {
	var out []models.Employee
	for _, employee := range r.employees {
		out = append(out, employee)
	}
	return out, nil
}

type fakeAccountRepo struct {
	accounts map[uint]models.Account
	nextID   uint
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[uint]models.Account)}
}

func (r *fakeAccountRepo) Create(account *models.Account) error {
	r.nextID++
	account.ID = r.nextID
	r.accounts[account.ID] = *account
	return nil
}

func (r *fakeAccountRepo) GetByID(id uint) (*models.Account, error) {
	account, ok := r.accounts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := account
	return &copy, nil
}

func (r *fakeAccountRepo) GetByUsername(username string) (*models.Account, error) {
	for _, account := range r.accounts {
		if account.Username == username {
			copy := account
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAccountRepo) Update(account *models.Account) error {
	if _, ok := r.accounts[account.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.accounts[account.ID] = *account
	return nil
}

func (r *fakeAccountRepo) Delete(id uint) error {
	if _, ok := r.accounts[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.accounts, id)
	return nil
}

func (r *fakeAccountRepo) GetAll() ([]models.Account, error) {
	var out []models.Account
	for _, account := range r.accounts {
		out = append(out, account)
	}
	return out, nil
}

type fakeCatalogCache struct {
	items   map[uint]models.Jewelry
	catalog []models.Jewelry
	hasAll  bool
}

func newFakeCatalogCache() *fakeCatalogCache {
	return &fakeCatalogCache{items: make(map[uint]models.Jewelry)}
}

func (c *fakeCatalogCache) GetJewelry(id uint) (*models.Jewelry, error) {
	item, ok := c.items[id]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	copy := item
	return &copy, nil
}

func (c *fakeCatalogCache) SetJewelry(item *models.Jewelry) error {
	c.items[item.ID] = *item
	return nil
}

func (c *fakeCatalogCache) InvalidateJewelry(id uint) error {
	delete(c.items, id)
	return nil
}

func (c *fakeCatalogCache) GetCatalog() ([]models.Jewelry, error) {
	if !c.hasAll {
		return nil, cache.ErrCacheMiss
	}
	return c.catalog, nil
}

func (c *fakeCatalogCache) SetCatalog(items []models.Jewelry) error {
	c.catalog = items
	c.hasAll = true
	return nil
}

func (c *fakeCatalogCache) InvalidateCatalog() error {
	c.catalog = nil
	c.hasAll = false
	return nil
}

type fakeSessionStore struct {
	sessions map[string]cache.SessionData
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]cache.SessionData)}
}

func (s *fakeSessionStore) SetSession(token string, data *cache.SessionData, _ time.Duration) error {
	s.sessions[token] = *data
	return nil
}

func (s *fakeSessionStore) GetSession(token string) (*cache.SessionData, error) {
	data, ok := s.sessions[token]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	copy := data
	return &copy, nil
}

func (s *fakeSessionStore) DeleteSession(token string) error {
	delete(s.sessions, token)
	return nil
}

// testEnv wires the full service graph over the fakes.
type testEnv struct {
	jewelryRepo   *fakeJewelryRepo
	orderRepo     *fakeOrderRepo
	orderItemRepo *fakeOrderItemRepo
	paymentRepo   *fakePaymentRepo
	customerRepo  *fakeCustomerRepo
	employeeRepo  *fakeEmployeeRepo

	inventory InventoryService
	orders    OrderService
	payments  PaymentService
	customers CustomerService
	employees EmployeeService
	jewelry   JewelryService
}

func newTestEnv() *testEnv {
	env := &testEnv{
		jewelryRepo:   newFakeJewelryRepo(),
		orderRepo:     newFakeOrderRepo(),
		orderItemRepo: newFakeOrderItemRepo(),
		paymentRepo:   newFakePaymentRepo(),
		customerRepo:  newFakeCustomerRepo(),
		employeeRepo:  newFakeEmployeeRepo(),
	}
	orderLocks := NewAggregateLocks()
	env.inventory = NewInventoryService(env.jewelryRepo, nil)
	env.orders = NewOrderService(env.orderRepo, env.orderItemRepo, env.paymentRepo, env.customerRepo, env.employeeRepo, env.jewelryRepo, env.inventory, orderLocks)
	env.payments = NewPaymentService(env.paymentRepo, env.orderRepo, orderLocks)
	env.customers = NewCustomerService(env.customerRepo, env.orders)
	env.employees = NewEmployeeService(env.employeeRepo, env.orderRepo)
	env.jewelry = NewJewelryService(env.jewelryRepo, env.orderItemRepo, newFakeCatalogCache())
	return env
}

func (e *testEnv) addRing(name string, price float64, stock int) *models.Jewelry {
	size := "8"
	item := &models.Jewelry{
		Type:          string(models.JewelryRing),
		Name:          name,
		Material:      "gold",
		Weight:        4.2,
		Price:         price,
		StockQuantity: stock,
		Category:      string(models.CategoryLuxury),
		Size:          &size,
	}
	e.jewelryRepo.Create(item)
	return item
}

func (e *testEnv) addCustomer(nif string) *models.Customer {
	customer := &models.Customer{NIF: nif, Name: "Maria Sousa"}
	e.customerRepo.Create(customer)
	return customer
}

func (e *testEnv) addEmployee(role string) *models.Employee {
	employee := &models.Employee{NIF: "900100200", Name: "Rui Gomes", Role: role, HireDate: time.Now()}
	e.employeeRepo.Create(employee)
	return employee
}
