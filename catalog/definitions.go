package catalog

var yesNo = []Choice{
	{Value: "yes", LabelKey: "agreements.flow.choice.yes"},
	{Value: "no", LabelKey: "agreements.flow.choice.no"},
}

// kinds is the full catalog, grouped by family: exchange, finance,
// partnership, gratis, family, settlement.
var kinds = []Kind{
	{
		ID:       "bay",
		TitleKey: "agreements.flow.type.bay",
		Topic:    "agreements.exchange.bay",
		Category: "exchange",
		Fields: []FieldDefinition{
			{Key: "seller_name", PromptKey: "agreements.flow.bay.seller"},
			{Key: "seller_document", PromptKey: "agreements.flow.bay.seller_document", Optional: true},
			{Key: "seller_address", PromptKey: "agreements.flow.bay.seller_address", Optional: true},
			{Key: "seller_contact", PromptKey: "agreements.flow.bay.seller_contact", Optional: true},
			{Key: "buyer_name", PromptKey: "agreements.flow.bay.buyer"},
			{Key: "buyer_document", PromptKey: "agreements.flow.bay.buyer_document", Optional: true},
			{Key: "buyer_address", PromptKey: "agreements.flow.bay.buyer_address", Optional: true},
			{Key: "buyer_contact", PromptKey: "agreements.flow.bay.buyer_contact", Optional: true},
			{Key: "goods_description", PromptKey: "agreements.flow.bay.goods"},
			{Key: "goods_details", PromptKey: "agreements.flow.bay.goods_details", Optional: true},
			{Key: "goods_condition", PromptKey: "agreements.flow.bay.condition", Choices: []Choice{
				{Value: "new", LabelKey: "agreements.flow.choice.bay.condition.new"},
				{Value: "used", LabelKey: "agreements.flow.choice.bay.condition.used"},
			}},
			{Key: "price", PromptKey: "agreements.flow.bay.price"},
			{Key: "price_currency", PromptKey: "agreements.flow.bay.currency", Optional: true},
			{Key: "payment_timing", PromptKey: "agreements.flow.bay.payment_timing", Choices: []Choice{
				{Value: "before", LabelKey: "agreements.flow.choice.bay.payment.before"},
				{Value: "after", LabelKey: "agreements.flow.choice.bay.payment.after"},
				{Value: "installments", LabelKey: "agreements.flow.choice.bay.payment.installments"},
				{Value: "deferred", LabelKey: "agreements.flow.choice.bay.payment.deferred"},
			}},
			{Key: "delivery_term", PromptKey: "agreements.flow.bay.delivery_term", Optional: true},
			{Key: "khiyar_term", PromptKey: "agreements.flow.bay.khiyar_term", Optional: true},
		},
	},
	{
		ID:       "salam",
		TitleKey: "agreements.flow.type.salam",
		Topic:    "agreements.exchange.salam",
		Category: "exchange",
		Fields: []FieldDefinition{
			{Key: "buyer_name", PromptKey: "agreements.flow.salam.buyer"},
			{Key: "buyer_document", PromptKey: "agreements.flow.salam.buyer_document", Optional: true},
			{Key: "buyer_address", PromptKey: "agreements.flow.salam.buyer_address", Optional: true},
			{Key: "buyer_contact", PromptKey: "agreements.flow.salam.buyer_contact", Optional: true},
			{Key: "supplier_name", PromptKey: "agreements.flow.salam.supplier"},
			{Key: "supplier_document", PromptKey: "agreements.flow.salam.supplier_document", Optional: true},
			{Key: "supplier_address", PromptKey: "agreements.flow.salam.supplier_address", Optional: true},
			{Key: "supplier_contact", PromptKey: "agreements.flow.salam.supplier_contact", Optional: true},
			{Key: "goods_name", PromptKey: "agreements.flow.salam.goods_name"},
			{Key: "goods_quality", PromptKey: "agreements.flow.salam.goods_quality"},
			{Key: "goods_quantity", PromptKey: "agreements.flow.salam.goods_quantity"},
			{Key: "goods_packaging", PromptKey: "agreements.flow.salam.goods_packaging", Optional: true},
			{Key: "delivery_date", PromptKey: "agreements.flow.salam.delivery_date"},
			{Key: "fixed_price", PromptKey: "agreements.flow.salam.fixed_price"},
			{Key: "delivery_place", PromptKey: "agreements.flow.salam.delivery_place"},
		},
	},
	{
		ID:       "istisna",
		TitleKey: "agreements.flow.type.istisna",
		Topic:    "agreements.exchange.istisna",
		Category: "exchange",
		Fields: []FieldDefinition{
			{Key: "customer_name", PromptKey: "agreements.flow.istisna.customer"},
			{Key: "customer_document", PromptKey: "agreements.flow.istisna.customer_document", Optional: true},
			{Key: "customer_address", PromptKey: "agreements.flow.istisna.customer_address", Optional: true},
			{Key: "customer_contact", PromptKey: "agreements.flow.istisna.customer_contact", Optional: true},
			{Key: "contractor_name", PromptKey: "agreements.flow.istisna.contractor"},
			{Key: "contractor_document", PromptKey: "agreements.flow.istisna.contractor_document", Optional: true},
			{Key: "contractor_address", PromptKey: "agreements.flow.istisna.contractor_address", Optional: true},
			{Key: "contractor_contact", PromptKey: "agreements.flow.istisna.contractor_contact", Optional: true},
			{Key: "product_name", PromptKey: "agreements.flow.istisna.product_name"},
			{Key: "product_materials", PromptKey: "agreements.flow.istisna.product_materials"},
			{Key: "product_dimensions", PromptKey: "agreements.flow.istisna.product_dimensions"},
			{Key: "product_quality", PromptKey: "agreements.flow.istisna.product_quality"},
			{Key: "product_quantity", PromptKey: "agreements.flow.istisna.product_quantity"},
			{Key: "deadline", PromptKey: "agreements.flow.istisna.term"},
			{Key: "materials_owner", PromptKey: "agreements.flow.istisna.materials", Choices: []Choice{
				{Value: "customer", LabelKey: "agreements.flow.choice.istisna.materials.customer"},
				{Value: "contractor", LabelKey: "agreements.flow.choice.istisna.materials.contractor"},
			}},
			{Key: "price", PromptKey: "agreements.flow.istisna.price"},
			{Key: "payment_schedule", PromptKey: "agreements.flow.istisna.payment_schedule", Optional: true},
			{Key: "start_date", PromptKey: "agreements.flow.istisna.start_date", Optional: true},
			{Key: "delivery_place", PromptKey: "agreements.flow.istisna.delivery_place", Optional: true},
		},
	},
	{
		ID:       "ijara",
		TitleKey: "agreements.flow.type.ijara",
		Topic:    "agreements.exchange.ijara",
		Category: "exchange",
		Fields: []FieldDefinition{
			{Key: "landlord_name", PromptKey: "agreements.flow.ijara.landlord"},
			{Key: "landlord_document", PromptKey: "agreements.flow.ijara.landlord_document", Optional: true},
			{Key: "landlord_address", PromptKey: "agreements.flow.ijara.landlord_address", Optional: true},
			{Key: "landlord_contact", PromptKey: "agreements.flow.ijara.landlord_contact", Optional: true},
			{Key: "tenant_name", PromptKey: "agreements.flow.ijara.tenant"},
			{Key: "tenant_document", PromptKey: "agreements.flow.ijara.tenant_document", Optional: true},
			{Key: "tenant_address", PromptKey: "agreements.flow.ijara.tenant_address", Optional: true},
			{Key: "tenant_contact", PromptKey: "agreements.flow.ijara.tenant_contact", Optional: true},
			{Key: "lease_object", PromptKey: "agreements.flow.ijara.object"},
			{Key: "lease_object_details", PromptKey: "agreements.flow.ijara.object_details", Optional: true},
			{Key: "lease_object_condition", PromptKey: "agreements.flow.ijara.object_condition", Optional: true},
			{Key: "lease_term", PromptKey: "agreements.flow.ijara.term"},
			{Key: "lease_price", PromptKey: "agreements.flow.ijara.price"},
			{Key: "lease_currency", PromptKey: "agreements.flow.ijara.currency", Optional: true},
			{Key: "payment_order", PromptKey: "agreements.flow.ijara.payment_order", Choices: []Choice{
				{Value: "monthly", LabelKey: "agreements.flow.choice.ijara.payment.monthly"},
				{Value: "one_time", LabelKey: "agreements.flow.choice.ijara.payment.one_time"},
				{Value: "other", LabelKey: "agreements.flow.choice.ijara.payment.other"},
			}},
			{Key: "damage_responsibility", PromptKey: "agreements.flow.ijara.damage_responsibility", Choices: []Choice{
				{Value: "tenant_fault", LabelKey: "agreements.flow.choice.ijara.damage.tenant"},
				{Value: "agreement", LabelKey: "agreements.flow.choice.ijara.damage.agreement"},
			}},
			{Key: "additional_terms", PromptKey: "agreements.flow.ijara.additional_terms", Optional: true},
		},
	},
	{
		ID:       "installment",
		TitleKey: "agreements.flow.type.installment",
		Topic:    "agreements.exchange.installment",
		Category: "exchange",
		Fields: []FieldDefinition{
			{Key: "seller_name", PromptKey: "agreements.flow.installment.seller"},
			{Key: "buyer_name", PromptKey: "agreements.flow.installment.buyer"},
			{Key: "goods_description", PromptKey: "agreements.flow.installment.goods"},
			{Key: "goods_details", PromptKey: "agreements.flow.installment.goods_details", Optional: true},
			{Key: "goods_condition", PromptKey: "agreements.flow.installment.goods_condition", Choices: []Choice{
				{Value: "new", LabelKey: "agreements.flow.choice.bay.condition.new"},
				{Value: "used", LabelKey: "agreements.flow.choice.bay.condition.used"},
			}},
			{Key: "total_price", PromptKey: "agreements.flow.installment.total_price"},
			{Key: "price_currency", PromptKey: "agreements.flow.installment.currency", Optional: true},
			{Key: "down_payment", PromptKey: "agreements.flow.installment.down_payment", Optional: true},
			{Key: "installment_count", PromptKey: "agreements.flow.installment.count"},
			{Key: "installment_amount", PromptKey: "agreements.flow.installment.amount"},
			{Key: "installment_schedule", PromptKey: "agreements.flow.installment.schedule", Optional: true},
			{Key: "delivery_term", PromptKey: "agreements.flow.installment.delivery_term", Optional: true},
		},
	},
	{
		ID:       "murabaha",
		TitleKey: "agreements.flow.type.murabaha",
		Topic:    "agreements.exchange.murabaha",
		Category: "exchange",
		Fields: []FieldDefinition{
			{Key: "seller_name", PromptKey: "agreements.flow.murabaha.seller"},
			{Key: "buyer_name", PromptKey: "agreements.flow.murabaha.buyer"},
			{Key: "goods_description", PromptKey: "agreements.flow.murabaha.goods"},
			{Key: "cost_price", PromptKey: "agreements.flow.murabaha.cost_price"},
			{Key: "markup", PromptKey: "agreements.flow.murabaha.markup"},
			{Key: "final_price", PromptKey: "agreements.flow.murabaha.final_price"},
			{Key: "price_currency", PromptKey: "agreements.flow.murabaha.currency", Optional: true},
			{Key: "payment_schedule", PromptKey: "agreements.flow.murabaha.payment_schedule", Optional: true},
			{Key: "delivery_term", PromptKey: "agreements.flow.murabaha.delivery_term", Optional: true},
		},
	},

	{
		ID:       "qard",
		TitleKey: "agreements.flow.type.qard",
		Topic:    "agreements.finance.qard",
		Category: "finance",
		Fields: []FieldDefinition{
			{Key: "lender_name", PromptKey: "agreements.flow.qard.lender_name"},
			{Key: "lender_document", PromptKey: "agreements.flow.qard.lender_document", Optional: true},
			{Key: "lender_address", PromptKey: "agreements.flow.qard.lender_address", Optional: true},
			{Key: "lender_contact", PromptKey: "agreements.flow.qard.lender_contact", Optional: true},
			{Key: "borrower_name", PromptKey: "agreements.flow.qard.borrower_name"},
			{Key: "borrower_document", PromptKey: "agreements.flow.qard.borrower_document", Optional: true},
			{Key: "borrower_address", PromptKey: "agreements.flow.qard.borrower_address", Optional: true},
			{Key: "borrower_contact", PromptKey: "agreements.flow.qard.borrower_contact", Optional: true},
			{Key: "amount", PromptKey: "agreements.flow.qard.amount"},
			{Key: "purpose", PromptKey: "agreements.flow.qard.purpose", Optional: true},
			{Key: "due_date", PromptKey: "agreements.flow.qard.due_date"},
			{Key: "repayment_method", PromptKey: "agreements.flow.qard.repayment_method", Optional: true},
			{Key: "collateral_required", PromptKey: "agreements.flow.qard.collateral_required", Choices: yesNo},
			{Key: "collateral_description", PromptKey: "agreements.flow.qard.collateral_description",
				DependsOn: &Dependency{Key: "collateral_required", Values: []string{"yes"}}},
			{Key: "extra_terms", PromptKey: "agreements.flow.qard.extra_terms", Optional: true},
		},
	},
	{
		ID:       "rahn",
		TitleKey: "agreements.flow.type.rahn",
		Topic:    "agreements.finance.rahn",
		Category: "finance",
		Fields: []FieldDefinition{
			{Key: "pledger_name", PromptKey: "agreements.flow.rahn.pledger"},
			{Key: "pledgee_name", PromptKey: "agreements.flow.rahn.pledgee"},
			{Key: "pledged_asset", PromptKey: "agreements.flow.rahn.asset"},
			{Key: "asset_value", PromptKey: "agreements.flow.rahn.asset_value", Optional: true},
			{Key: "secured_debt_amount", PromptKey: "agreements.flow.rahn.debt_amount"},
			{Key: "debt_due_date", PromptKey: "agreements.flow.rahn.debt_due_date"},
			{Key: "storage_terms", PromptKey: "agreements.flow.rahn.storage_terms", Optional: true},
			{Key: "redemption_terms", PromptKey: "agreements.flow.rahn.redemption_terms", Optional: true},
		},
	},
	{
		ID:       "kafala",
		TitleKey: "agreements.flow.type.kafala",
		Topic:    "agreements.finance.kafala",
		Category: "finance",
		Fields: []FieldDefinition{
			{Key: "guarantor_name", PromptKey: "agreements.flow.kafala.guarantor"},
			{Key: "debtor_name", PromptKey: "agreements.flow.kafala.debtor"},
			{Key: "creditor_name", PromptKey: "agreements.flow.kafala.creditor", Optional: true},
			{Key: "obligation", PromptKey: "agreements.flow.kafala.obligation"},
			{Key: "guarantee_term", PromptKey: "agreements.flow.kafala.term"},
		},
	},
	{
		ID:       "hawala",
		TitleKey: "agreements.flow.type.hawala",
		Topic:    "agreements.finance.hawala",
		Category: "finance",
		Fields: []FieldDefinition{
			{Key: "transferor_name", PromptKey: "agreements.flow.hawala.transferor"},
			{Key: "new_debtor_name", PromptKey: "agreements.flow.hawala.new_debtor"},
			{Key: "transferee_name", PromptKey: "agreements.flow.hawala.transferee"},
			{Key: "debt_amount", PromptKey: "agreements.flow.hawala.debt_amount"},
			{Key: "debt_currency", PromptKey: "agreements.flow.hawala.debt_currency", Optional: true},
			{Key: "due_date", PromptKey: "agreements.flow.hawala.due_date"},
			{Key: "transfer_terms", PromptKey: "agreements.flow.hawala.transfer_terms", Optional: true},
		},
	},

	{
		ID:       "musharaka",
		TitleKey: "agreements.flow.type.musharaka",
		Topic:    "agreements.partnership.musharaka",
		Category: "partnership",
		Fields: []FieldDefinition{
			{Key: "partner1_name", PromptKey: "agreements.flow.musharaka.partner1_name"},
			{Key: "partner2_name", PromptKey: "agreements.flow.musharaka.partner2_name"},
			{Key: "business_description", PromptKey: "agreements.flow.musharaka.business_description", Optional: true},
			{Key: "partner1_contribution", PromptKey: "agreements.flow.musharaka.partner1_contribution"},
			{Key: "partner2_contribution", PromptKey: "agreements.flow.musharaka.partner2_contribution"},
			{Key: "profit_split", PromptKey: "agreements.flow.musharaka.profit_split", PercentPair: true, AllowPercent: true},
			{Key: "loss_share", PromptKey: "agreements.flow.musharaka.loss_share", Optional: true},
			{Key: "management_roles", PromptKey: "agreements.flow.musharaka.management_roles", Optional: true},
			{Key: "duration", PromptKey: "agreements.flow.musharaka.duration", Optional: true},
		},
	},
	{
		ID:       "mudaraba",
		TitleKey: "agreements.flow.type.mudaraba",
		Topic:    "agreements.partnership.mudaraba",
		Category: "partnership",
		Fields: []FieldDefinition{
			{Key: "investor_name", PromptKey: "agreements.flow.mudaraba.investor"},
			{Key: "manager_name", PromptKey: "agreements.flow.mudaraba.manager"},
			{Key: "capital_amount", PromptKey: "agreements.flow.mudaraba.capital"},
			{Key: "business_description", PromptKey: "agreements.flow.mudaraba.business_description", Optional: true},
			{Key: "duration", PromptKey: "agreements.flow.mudaraba.duration", Optional: true},
			{Key: "profit_share_investor", PromptKey: "agreements.flow.mudaraba.profit_investor", PercentValue: true, AllowPercent: true},
			{Key: "profit_share_manager", PromptKey: "agreements.flow.mudaraba.profit_manager", PercentValue: true, AllowPercent: true},
			{Key: "profit_distribution", PromptKey: "agreements.flow.mudaraba.profit_distribution", Optional: true},
			{Key: "loss_terms", PromptKey: "agreements.flow.mudaraba.loss_terms", Optional: true},
		},
	},
	{
		ID:       "inan",
		TitleKey: "agreements.flow.type.inan",
		Topic:    "agreements.partnership.inan",
		Category: "partnership",
		Fields: []FieldDefinition{
			{Key: "partner1_name", PromptKey: "agreements.flow.inan.partner1_name"},
			{Key: "partner2_name", PromptKey: "agreements.flow.inan.partner2_name"},
			{Key: "business_description", PromptKey: "agreements.flow.inan.business_description", Optional: true},
			{Key: "partner1_contribution", PromptKey: "agreements.flow.inan.partner1_contribution"},
			{Key: "partner2_contribution", PromptKey: "agreements.flow.inan.partner2_contribution"},
			{Key: "profit_split", PromptKey: "agreements.flow.inan.profit_split", PercentPair: true, AllowPercent: true},
			{Key: "management_roles", PromptKey: "agreements.flow.inan.management_roles", Optional: true},
			{Key: "duration", PromptKey: "agreements.flow.inan.duration", Optional: true},
		},
	},
	{
		ID:       "wakala",
		TitleKey: "agreements.flow.type.wakala",
		Topic:    "agreements.partnership.wakala",
		Category: "partnership",
		Fields: []FieldDefinition{
			{Key: "principal_name", PromptKey: "agreements.flow.wakala.principal"},
			{Key: "agent_name", PromptKey: "agreements.flow.wakala.agent"},
			{Key: "agency_scope", PromptKey: "agreements.flow.wakala.scope"},
			{Key: "agency_fee", PromptKey: "agreements.flow.wakala.fee", Optional: true},
			{Key: "duration", PromptKey: "agreements.flow.wakala.duration", Optional: true},
			{Key: "reporting_terms", PromptKey: "agreements.flow.wakala.reporting_terms", Optional: true},
			{Key: "termination_terms", PromptKey: "agreements.flow.wakala.termination_terms", Optional: true},
		},
	},

	{
		ID:       "hiba",
		TitleKey: "agreements.flow.type.hiba",
		Topic:    "agreements.gratis.hiba",
		Category: "gratis",
		Fields: []FieldDefinition{
			{Key: "donor_name", PromptKey: "agreements.flow.hiba.donor"},
			{Key: "recipient_name", PromptKey: "agreements.flow.hiba.recipient"},
			{Key: "gift_description", PromptKey: "agreements.flow.hiba.gift"},
			{Key: "return_condition", PromptKey: "agreements.flow.hiba.return_condition", Choices: yesNo},
		},
	},
	{
		ID:       "sadaqa",
		TitleKey: "agreements.flow.type.sadaqa",
		Topic:    "agreements.gratis.sadaqa",
		Category: "gratis",
		Fields: []FieldDefinition{
			{Key: "donor_name", PromptKey: "agreements.flow.sadaqa.donor"},
			{Key: "beneficiary_name", PromptKey: "agreements.flow.sadaqa.beneficiary"},
			{Key: "donation_description", PromptKey: "agreements.flow.sadaqa.description"},
			{Key: "donation_amount", PromptKey: "agreements.flow.sadaqa.amount", Optional: true},
			{Key: "donation_purpose", PromptKey: "agreements.flow.sadaqa.purpose", Optional: true},
			{Key: "transfer_method", PromptKey: "agreements.flow.sadaqa.transfer_method", Optional: true},
		},
	},
	{
		ID:       "ariya",
		TitleKey: "agreements.flow.type.ariya",
		Topic:    "agreements.gratis.ariya",
		Category: "gratis",
		Fields: []FieldDefinition{
			{Key: "lender_name", PromptKey: "agreements.flow.ariya.lender"},
			{Key: "borrower_name", PromptKey: "agreements.flow.ariya.borrower"},
			{Key: "item_description", PromptKey: "agreements.flow.ariya.item_description"},
			{Key: "use_term", PromptKey: "agreements.flow.ariya.use_term"},
			{Key: "return_condition", PromptKey: "agreements.flow.ariya.return_condition", Optional: true},
			{Key: "liability_terms", PromptKey: "agreements.flow.ariya.liability_terms", Optional: true},
		},
	},
	{
		ID:       "waqf",
		TitleKey: "agreements.flow.type.waqf",
		Topic:    "agreements.gratis.waqf",
		Category: "gratis",
		Fields: []FieldDefinition{
			{Key: "founder_name", PromptKey: "agreements.flow.waqf.founder"},
			{Key: "manager_name", PromptKey: "agreements.flow.waqf.manager"},
			{Key: "waqf_asset", PromptKey: "agreements.flow.waqf.asset"},
			{Key: "waqf_purpose", PromptKey: "agreements.flow.waqf.purpose"},
			{Key: "beneficiaries", PromptKey: "agreements.flow.waqf.beneficiaries"},
			{Key: "management_conditions", PromptKey: "agreements.flow.waqf.management_conditions", Optional: true},
		},
	},
	{
		ID:       "wasiya",
		TitleKey: "agreements.flow.type.wasiya",
		Topic:    "agreements.gratis.wasiya",
		Category: "gratis",
		Fields: []FieldDefinition{
			{Key: "testator_name", PromptKey: "agreements.flow.wasiya.testator"},
			{Key: "beneficiary_name", PromptKey: "agreements.flow.wasiya.beneficiary"},
			{Key: "executor_name", PromptKey: "agreements.flow.wasiya.executor", Optional: true},
			{Key: "bequest_description", PromptKey: "agreements.flow.wasiya.description"},
			{Key: "bequest_conditions", PromptKey: "agreements.flow.wasiya.conditions", Optional: true},
		},
	},

	{
		ID:       "nikah",
		TitleKey: "agreements.flow.type.nikah",
		Topic:    "agreements.family.nikah",
		Category: "family",
		Fields: []FieldDefinition{
			{Key: "groom_name", PromptKey: "agreements.flow.nikah.groom"},
			{Key: "bride_name", PromptKey: "agreements.flow.nikah.bride"},
			{Key: "wali_name", PromptKey: "agreements.flow.nikah.wali", Optional: true},
			{Key: "mahr_amount", PromptKey: "agreements.flow.nikah.mahr"},
			{Key: "witnesses", PromptKey: "agreements.flow.nikah.witnesses"},
			{Key: "marriage_date_place", PromptKey: "agreements.flow.nikah.date_place"},
			{Key: "additional_terms", PromptKey: "agreements.flow.nikah.additional_terms", Optional: true},
		},
	},
	{
		ID:       "talaq",
		TitleKey: "agreements.flow.type.talaq",
		Topic:    "agreements.family.talaq",
		Category: "family",
		Fields: []FieldDefinition{
			{Key: "husband_name", PromptKey: "agreements.flow.talaq.husband"},
			{Key: "wife_name", PromptKey: "agreements.flow.talaq.wife"},
			{Key: "talaq_date", PromptKey: "agreements.flow.talaq.date"},
			{Key: "iddah_terms", PromptKey: "agreements.flow.talaq.iddah_terms", Optional: true},
			{Key: "rights_settlement", PromptKey: "agreements.flow.talaq.rights_settlement", Optional: true},
		},
	},
	{
		ID:       "khul",
		TitleKey: "agreements.flow.type.khul",
		Topic:    "agreements.family.khul",
		Category: "family",
		Fields: []FieldDefinition{
			{Key: "wife_name", PromptKey: "agreements.flow.khul.wife"},
			{Key: "husband_name", PromptKey: "agreements.flow.khul.husband"},
			{Key: "compensation_amount", PromptKey: "agreements.flow.khul.compensation"},
			{Key: "agreement_date", PromptKey: "agreements.flow.khul.date", Optional: true},
			{Key: "additional_terms", PromptKey: "agreements.flow.khul.additional_terms", Optional: true},
		},
	},
	{
		ID:       "ridaa",
		TitleKey: "agreements.flow.type.ridaa",
		Topic:    "agreements.family.ridaa",
		Category: "family",
		Fields: []FieldDefinition{
			{Key: "nurse_name", PromptKey: "agreements.flow.ridaa.nurse"},
			{Key: "child_name", PromptKey: "agreements.flow.ridaa.child"},
			{Key: "guardian_name", PromptKey: "agreements.flow.ridaa.guardian"},
			{Key: "feeding_period", PromptKey: "agreements.flow.ridaa.period"},
			{Key: "compensation", PromptKey: "agreements.flow.ridaa.compensation", Optional: true},
			{Key: "additional_terms", PromptKey: "agreements.flow.ridaa.additional_terms", Optional: true},
		},
	},

	{
		ID:       "sulh",
		TitleKey: "agreements.flow.type.sulh",
		Topic:    "agreements.settlement.sulh",
		Category: "settlement",
		Fields: []FieldDefinition{
			{Key: "party_one_name", PromptKey: "agreements.flow.sulh.party_one_name"},
			{Key: "party_one_document", PromptKey: "agreements.flow.sulh.party_one_document", Optional: true},
			{Key: "party_one_address", PromptKey: "agreements.flow.sulh.party_one_address", Optional: true},
			{Key: "party_one_contact", PromptKey: "agreements.flow.sulh.party_one_contact", Optional: true},
			{Key: "party_two_name", PromptKey: "agreements.flow.sulh.party_two_name"},
			{Key: "party_two_document", PromptKey: "agreements.flow.sulh.party_two_document", Optional: true},
			{Key: "party_two_address", PromptKey: "agreements.flow.sulh.party_two_address", Optional: true},
			{Key: "party_two_contact", PromptKey: "agreements.flow.sulh.party_two_contact", Optional: true},
			{Key: "dispute_subject", PromptKey: "agreements.flow.sulh.dispute_subject"},
			{Key: "proposed_resolution", PromptKey: "agreements.flow.sulh.proposed_resolution"},
			{Key: "claims_waived", PromptKey: "agreements.flow.sulh.claims_waived", Choices: yesNo},
		},
	},
	{
		ID:       "amana",
		TitleKey: "agreements.flow.type.amana",
		Topic:    "agreements.settlement.amana",
		Category: "settlement",
		Fields: []FieldDefinition{
			{Key: "owner_name", PromptKey: "agreements.flow.amana.owner"},
			{Key: "custodian_name", PromptKey: "agreements.flow.amana.custodian"},
			{Key: "asset_description", PromptKey: "agreements.flow.amana.asset"},
			{Key: "storage_term", PromptKey: "agreements.flow.amana.term"},
			{Key: "storage_conditions", PromptKey: "agreements.flow.amana.storage_conditions", Optional: true},
			{Key: "custodian_liability", PromptKey: "agreements.flow.amana.custodian_liability", Optional: true},
			{Key: "return_terms", PromptKey: "agreements.flow.amana.return_terms", Optional: true},
		},
	},
	{
		ID:       "uaria",
		TitleKey: "agreements.flow.type.uaria",
		Topic:    "agreements.settlement.uaria",
		Category: "settlement",
		Fields: []FieldDefinition{
			{Key: "lender_name", PromptKey: "agreements.flow.uaria.lender"},
			{Key: "borrower_name", PromptKey: "agreements.flow.uaria.borrower"},
			{Key: "item_description", PromptKey: "agreements.flow.uaria.item_description"},
			{Key: "use_term", PromptKey: "agreements.flow.uaria.use_term"},
			{Key: "return_condition", PromptKey: "agreements.flow.uaria.return_condition", Optional: true},
			{Key: "liability_terms", PromptKey: "agreements.flow.uaria.liability_terms", Optional: true},
		},
	},
}
