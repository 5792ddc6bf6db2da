package domain

// Normalização centralizada de registros frouxos para os tipos estritos do
// domínio. Uma função por entidade, todas totais: nunca retornam erro nem
// propagam campos ausentes para a aritmética. Os defaults de cada campo
// opcional estão documentados no próprio código.

// NormalizeBrand coage uma Row em Brand. Status desconhecido é preservado
// (a apresentação aplica o rótulo de fallback); ausente vira pending.
func NormalizeBrand(row Row) *Brand {
	return &Brand{
		ID:       row.String("id"),
		Name:     row.String("name"),
		Category: row.String("category"),
		Status: row.Enum("status", BrandStatusPending, true,
			BrandStatusActive, BrandStatusInactive, BrandStatusPending),
		SocialLinks: NormalizeSocialLinks(row.Object("social_links")),
	}
}

// NormalizeSocialLinks coage o documento de links sociais; ausências viram
// strings vazias, nunca nil
func NormalizeSocialLinks(row Row) SocialLinks {
	return SocialLinks{
		Facebook:  row.String("facebook"),
		Instagram: row.String("instagram"),
		TikTok:    row.String("tiktok"),
		Snapchat:  row.String("snapchat"),
		Website:   row.String("website"),
	}
}

// NormalizeEmployee coage uma Row em Employee. Tipo de contratação ausente
// vira full-time; a configuração de comissão ausente vira percentage/0 e o
// valor nunca fica negativo.
func NormalizeEmployee(row Row) *Employee {
	commission := row.Object("commission")
	value := commission.Float("value")
	if value < 0 {
		value = 0
	}

	return &Employee{
		ID:         row.Int("id"),
		Name:       row.String("name"),
		Lastname:   row.String("lastname"),
		Email:      row.String("email"),
		Department: row.String("department"),
		JobTitle:   row.String("job_title"),
		EmploymentType: row.Enum("employment_type", EmploymentFullTime, false,
			EmploymentFullTime, EmploymentPartTime, EmploymentFreelance, EmploymentPerTask),
		Status: row.String("status"),
		Commission: CommissionConfig{
			Type: commission.Enum("type", CommissionTypePercentage, false,
				CommissionTypePercentage, CommissionTypeFixed),
			Value: value,
		},
		PasswordHash: row.String("password"),
		Active:       row.Bool("active"),
		RoleID:       row.Int("role_id"),
	}
}

// NormalizeMediaBuying coage uma Row em MediaBuyingRecord e recalcula os
// campos derivados. Valores negativos de spend/orders são zerados.
func NormalizeMediaBuying(row Row) *MediaBuyingRecord {
	spend := row.Float("spend")
	if spend < 0 {
		spend = 0
	}
	orders := row.Int("orders_count")
	if orders < 0 {
		orders = 0
	}

	record := &MediaBuyingRecord{
		ID: row.String("id"),
		Platform: row.Enum("platform", PlatformOther, false,
			PlatformFacebook, PlatformInstagram, PlatformTikTok,
			PlatformSnapchat, PlatformGoogle, PlatformOther),
		Date:         row.Date("date"),
		BrandID:      row.String("brand_id"),
		EmployeeID:   row.Int("employee_id"),
		Spend:        spend,
		OrdersCount:  orders,
		OrderCost:    row.Float("order_cost"),
		CampaignLink: row.String("campaign_link"),
		Notes:        row.String("notes"),
	}

	if _, ok := row["roas"]; ok {
		roas := row.Float("roas")
		record.ROAS = &roas
	}

	record.RecomputeDerived()
	return record
}

// NormalizeContentTask coage uma Row em ContentTask. Tipo ausente vira
// other; status ausente vira in-progress.
func NormalizeContentTask(row Row) *ContentTask {
	return &ContentTask{
		ID:         row.String("id"),
		EmployeeID: row.Int("employee_id"),
		BrandID:    row.String("brand_id"),
		TaskType: row.Enum("task_type", TaskTypeOther, false,
			TaskTypePost, TaskTypeAd, TaskTypeReel, TaskTypeProduct,
			TaskTypeLandingPage, TaskTypeOther),
		Deadline: row.Date("deadline"),
		Status: row.Enum("status", TaskStatusInProgress, false,
			TaskStatusInProgress, TaskStatusDelivered, TaskStatusDelayed),
		DeliveryLink: row.String("delivery_link"),
		Notes:        row.String("notes"),
	}
}

// NormalizeCommission coage uma Row em Commission e recalcula o total.
// Valores negativos são zerados para manter a invariante value_amount >= 0.
func NormalizeCommission(row Row) *Commission {
	amount := row.Float("value_amount")
	if amount < 0 {
		amount = 0
	}
	orders := row.Int("orders_count")
	if orders < 0 {
		orders = 0
	}

	commission := &Commission{
		ID:         row.String("id"),
		EmployeeID: row.Int("employee_id"),
		CommissionType: row.Enum("commission_type", CommissionOnConfirmation, false,
			CommissionOnConfirmation, CommissionOnDelivery),
		ValueType: row.Enum("value_type", CommissionTypePercentage, false,
			CommissionTypePercentage, CommissionTypeFixed),
		ValueAmount: amount,
		OrdersCount: orders,
		DueDate:     row.Date("due_date"),
	}

	commission.RecomputeDerived()
	return commission
}

// NormalizeRevenue coage uma Row em Revenue e recalcula o total
func NormalizeRevenue(row Row) *Revenue {
	units := row.Int("units_sold")
	if units < 0 {
		units = 0
	}
	price := row.Float("unit_price")
	if price < 0 {
		price = 0
	}

	revenue := &Revenue{
		ID:        row.String("id"),
		BrandID:   row.String("brand_id"),
		Date:      row.Date("date"),
		UnitsSold: units,
		UnitPrice: price,
		Notes:     row.String("notes"),
	}

	revenue.RecomputeDerived()
	return revenue
}

// NormalizeExpense coage uma Row em Expense. Categoria ausente vira other.
func NormalizeExpense(row Row) *Expense {
	amount := row.Float("amount")
	if amount < 0 {
		amount = 0
	}

	return &Expense{
		ID: row.String("id"),
		Category: row.Enum("category", ExpenseOther, false,
			ExpenseAds, ExpenseSalaries, ExpenseRent, ExpenseSupplies, ExpenseOther),
		Amount:      amount,
		Date:        row.Date("date"),
		BrandID:     row.String("brand_id"),
		Description: row.String("description"),
	}
}
