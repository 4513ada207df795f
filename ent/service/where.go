// Code generated by ent, DO NOT EDIT.

package service

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/cadencehq/cadence/ent/predicate"
	"github.com/shopspring/decimal"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Service {
	return predicate.Service(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Service {
	return predicate.Service(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Service {
	return predicate.Service(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Service {
	return predicate.Service(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Service {
	return predicate.Service(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Service {
	return predicate.Service(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Service {
	return predicate.Service(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Service {
	return predicate.Service(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Service {
	return predicate.Service(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldTenantID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldUpdatedAt, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldCreatedBy, v))
}

// UpdatedBy applies equality check predicate on the "updated_by" field. It's identical to UpdatedByEQ.
func UpdatedBy(v string) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldUpdatedBy, v))
}

// CustomerID applies equality check predicate on the "customer_id" field. It's identical to CustomerIDEQ.
func CustomerID(v string) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldCustomerID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldName, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v decimal.Decimal) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldAmount, v))
}

// BillingType applies equality check predicate on the "billing_type" field. It's identical to BillingTypeEQ.
func BillingType(v string) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldBillingType, v))
}

// BillingFrequency applies equality check predicate on the "billing_frequency" field. It's identical to BillingFrequencyEQ.
func BillingFrequency(v string) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldBillingFrequency, v))
}

// ServiceStatus applies equality check predicate on the "service_status" field. It's identical to ServiceStatusEQ.
func ServiceStatus(v string) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldServiceStatus, v))
}

// NextBillingDate applies equality check predicate on the "next_billing_date" field. It's identical to NextBillingDateEQ.
func NextBillingDate(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldNextBillingDate, v))
}

// ActivatedAt applies equality check predicate on the "activated_at" field. It's identical to ActivatedAtEQ.
func ActivatedAt(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldActivatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.Service {
	return predicate.Service(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.Service {
	return predicate.Service(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.Service {
	return predicate.Service(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.Service {
	return predicate.Service(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.Service {
	return predicate.Service(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.Service {
	return predicate.Service(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.Service {
	return predicate.Service(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.Service {
	return predicate.Service(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.Service {
	return predicate.Service(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.Service {
	return predicate.Service(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.Service {
	return predicate.Service(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.Service {
	return predicate.Service(sql.FieldContainsFold(FieldTenantID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Service {
	return predicate.Service(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Service {
	return predicate.Service(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Service {
	return predicate.Service(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Service {
	return predicate.Service(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Service {
	return predicate.Service(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Service {
	return predicate.Service(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Service {
	return predicate.Service(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Service {
	return predicate.Service(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Service {
	return predicate.Service(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Service {
	return predicate.Service(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Service {
	return predicate.Service(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Service {
	return predicate.Service(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Service {
	return predicate.Service(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Service {
	return predicate.Service(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Service {
	return predicate.Service(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Service {
	return predicate.Service(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldLTE(FieldUpdatedAt, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.Service {
	return predicate.Service(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.Service {
	return predicate.Service(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.Service {
	return predicate.Service(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.Service {
	return predicate.Service(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.Service {
	return predicate.Service(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.Service {
	return predicate.Service(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.Service {
	return predicate.Service(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.Service {
	return predicate.Service(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.Service {
	return predicate.Service(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.Service {
	return predicate.Service(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.Service {
	return predicate.Service(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.Service {
	return predicate.Service(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.Service {
	return predicate.Service(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.Service {
	return predicate.Service(sql.FieldContainsFold(FieldCreatedBy, v))
}

// UpdatedByEQ applies the EQ predicate on the "updated_by" field.
func UpdatedByEQ(v string) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldUpdatedBy, v))
}

// UpdatedByNEQ applies the NEQ predicate on the "updated_by" field.
func UpdatedByNEQ(v string) predicate.Service {
	return predicate.Service(sql.FieldNEQ(FieldUpdatedBy, v))
}

// UpdatedByIn applies the In predicate on the "updated_by" field.
func UpdatedByIn(vs ...string) predicate.Service {
	return predicate.Service(sql.FieldIn(FieldUpdatedBy, vs...))
}

// UpdatedByNotIn applies the NotIn predicate on the "updated_by" field.
func UpdatedByNotIn(vs ...string) predicate.Service {
	return predicate.Service(sql.FieldNotIn(FieldUpdatedBy, vs...))
}

// UpdatedByGT applies the GT predicate on the "updated_by" field.
func UpdatedByGT(v string) predicate.Service {
	return predicate.Service(sql.FieldGT(FieldUpdatedBy, v))
}

// UpdatedByGTE applies the GTE predicate on the "updated_by" field.
func UpdatedByGTE(v string) predicate.Service {
	return predicate.Service(sql.FieldGTE(FieldUpdatedBy, v))
}

// UpdatedByLT applies the LT predicate on the "updated_by" field.
func UpdatedByLT(v string) predicate.Service {
	return predicate.Service(sql.FieldLT(FieldUpdatedBy, v))
}

// UpdatedByLTE applies the LTE predicate on the "updated_by" field.
func UpdatedByLTE(v string) predicate.Service {
	return predicate.Service(sql.FieldLTE(FieldUpdatedBy, v))
}

// UpdatedByContains applies the Contains predicate on the "updated_by" field.
func UpdatedByContains(v string) predicate.Service {
	return predicate.Service(sql.FieldContains(FieldUpdatedBy, v))
}

// UpdatedByHasPrefix applies the HasPrefix predicate on the "updated_by" field.
func UpdatedByHasPrefix(v string) predicate.Service {
	return predicate.Service(sql.FieldHasPrefix(FieldUpdatedBy, v))
}

// UpdatedByHasSuffix applies the HasSuffix predicate on the "updated_by" field.
func UpdatedByHasSuffix(v string) predicate.Service {
	return predicate.Service(sql.FieldHasSuffix(FieldUpdatedBy, v))
}

// UpdatedByIsNil applies the IsNil predicate on the "updated_by" field.
func UpdatedByIsNil() predicate.Service {
	return predicate.Service(sql.FieldIsNull(FieldUpdatedBy))
}

// UpdatedByNotNil applies the NotNil predicate on the "updated_by" field.
func UpdatedByNotNil() predicate.Service {
	return predicate.Service(sql.FieldNotNull(FieldUpdatedBy))
}

// UpdatedByEqualFold applies the EqualFold predicate on the "updated_by" field.
func UpdatedByEqualFold(v string) predicate.Service {
	return predicate.Service(sql.FieldEqualFold(FieldUpdatedBy, v))
}

// UpdatedByContainsFold applies the ContainsFold predicate on the "updated_by" field.
func UpdatedByContainsFold(v string) predicate.Service {
	return predicate.Service(sql.FieldContainsFold(FieldUpdatedBy, v))
}

// CustomerIDEQ applies the EQ predicate on the "customer_id" field.
func CustomerIDEQ(v string) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldCustomerID, v))
}

// CustomerIDNEQ applies the NEQ predicate on the "customer_id" field.
func CustomerIDNEQ(v string) predicate.Service {
	return predicate.Service(sql.FieldNEQ(FieldCustomerID, v))
}

// CustomerIDIn applies the In predicate on the "customer_id" field.
func CustomerIDIn(vs ...string) predicate.Service {
	return predicate.Service(sql.FieldIn(FieldCustomerID, vs...))
}

// CustomerIDNotIn applies the NotIn predicate on the "customer_id" field.
func CustomerIDNotIn(vs ...string) predicate.Service {
	return predicate.Service(sql.FieldNotIn(FieldCustomerID, vs...))
}

// CustomerIDGT applies the GT predicate on the "customer_id" field.
func CustomerIDGT(v string) predicate.Service {
	return predicate.Service(sql.FieldGT(FieldCustomerID, v))
}

// CustomerIDGTE applies the GTE predicate on the "customer_id" field.
func CustomerIDGTE(v string) predicate.Service {
	return predicate.Service(sql.FieldGTE(FieldCustomerID, v))
}

// CustomerIDLT applies the LT predicate on the "customer_id" field.
func CustomerIDLT(v string) predicate.Service {
	return predicate.Service(sql.FieldLT(FieldCustomerID, v))
}

// CustomerIDLTE applies the LTE predicate on the "customer_id" field.
func CustomerIDLTE(v string) predicate.Service {
	return predicate.Service(sql.FieldLTE(FieldCustomerID, v))
}

// CustomerIDContains applies the Contains predicate on the "customer_id" field.
func CustomerIDContains(v string) predicate.Service {
	return predicate.Service(sql.FieldContains(FieldCustomerID, v))
}

// CustomerIDHasPrefix applies the HasPrefix predicate on the "customer_id" field.
func CustomerIDHasPrefix(v string) predicate.Service {
	return predicate.Service(sql.FieldHasPrefix(FieldCustomerID, v))
}

// CustomerIDHasSuffix applies the HasSuffix predicate on the "customer_id" field.
func CustomerIDHasSuffix(v string) predicate.Service {
	return predicate.Service(sql.FieldHasSuffix(FieldCustomerID, v))
}

// CustomerIDEqualFold applies the EqualFold predicate on the "customer_id" field.
func CustomerIDEqualFold(v string) predicate.Service {
	return predicate.Service(sql.FieldEqualFold(FieldCustomerID, v))
}

// CustomerIDContainsFold applies the ContainsFold predicate on the "customer_id" field.
func CustomerIDContainsFold(v string) predicate.Service {
	return predicate.Service(sql.FieldContainsFold(FieldCustomerID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Service {
	return predicate.Service(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Service {
	return predicate.Service(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Service {
	return predicate.Service(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Service {
	return predicate.Service(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Service {
	return predicate.Service(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Service {
	return predicate.Service(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Service {
	return predicate.Service(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Service {
	return predicate.Service(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Service {
	return predicate.Service(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Service {
	return predicate.Service(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Service {
	return predicate.Service(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Service {
	return predicate.Service(sql.FieldContainsFold(FieldName, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v decimal.Decimal) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v decimal.Decimal) predicate.Service {
	return predicate.Service(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...decimal.Decimal) predicate.Service {
	return predicate.Service(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...decimal.Decimal) predicate.Service {
	return predicate.Service(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v decimal.Decimal) predicate.Service {
	return predicate.Service(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v decimal.Decimal) predicate.Service {
	return predicate.Service(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v decimal.Decimal) predicate.Service {
	return predicate.Service(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v decimal.Decimal) predicate.Service {
	return predicate.Service(sql.FieldLTE(FieldAmount, v))
}

// BillingTypeEQ applies the EQ predicate on the "billing_type" field.
func BillingTypeEQ(v string) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldBillingType, v))
}

// BillingTypeNEQ applies the NEQ predicate on the "billing_type" field.
func BillingTypeNEQ(v string) predicate.Service {
	return predicate.Service(sql.FieldNEQ(FieldBillingType, v))
}

// BillingTypeIn applies the In predicate on the "billing_type" field.
func BillingTypeIn(vs ...string) predicate.Service {
	return predicate.Service(sql.FieldIn(FieldBillingType, vs...))
}

// BillingTypeNotIn applies the NotIn predicate on the "billing_type" field.
func BillingTypeNotIn(vs ...string) predicate.Service {
	return predicate.Service(sql.FieldNotIn(FieldBillingType, vs...))
}

// BillingTypeGT applies the GT predicate on the "billing_type" field.
func BillingTypeGT(v string) predicate.Service {
	return predicate.Service(sql.FieldGT(FieldBillingType, v))
}

// BillingTypeGTE applies the GTE predicate on the "billing_type" field.
func BillingTypeGTE(v string) predicate.Service {
	return predicate.Service(sql.FieldGTE(FieldBillingType, v))
}

// BillingTypeLT applies the LT predicate on the "billing_type" field.
func BillingTypeLT(v string) predicate.Service {
	return predicate.Service(sql.FieldLT(FieldBillingType, v))
}

// BillingTypeLTE applies the LTE predicate on the "billing_type" field.
func BillingTypeLTE(v string) predicate.Service {
	return predicate.Service(sql.FieldLTE(FieldBillingType, v))
}

// BillingTypeContains applies the Contains predicate on the "billing_type" field.
func BillingTypeContains(v string) predicate.Service {
	return predicate.Service(sql.FieldContains(FieldBillingType, v))
}

// BillingTypeHasPrefix applies the HasPrefix predicate on the "billing_type" field.
func BillingTypeHasPrefix(v string) predicate.Service {
	return predicate.Service(sql.FieldHasPrefix(FieldBillingType, v))
}

// BillingTypeHasSuffix applies the HasSuffix predicate on the "billing_type" field.
func BillingTypeHasSuffix(v string) predicate.Service {
	return predicate.Service(sql.FieldHasSuffix(FieldBillingType, v))
}

// BillingTypeEqualFold applies the EqualFold predicate on the "billing_type" field.
func BillingTypeEqualFold(v string) predicate.Service {
	return predicate.Service(sql.FieldEqualFold(FieldBillingType, v))
}

// BillingTypeContainsFold applies the ContainsFold predicate on the "billing_type" field.
func BillingTypeContainsFold(v string) predicate.Service {
	return predicate.Service(sql.FieldContainsFold(FieldBillingType, v))
}

// BillingFrequencyEQ applies the EQ predicate on the "billing_frequency" field.
func BillingFrequencyEQ(v string) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldBillingFrequency, v))
}

// BillingFrequencyNEQ applies the NEQ predicate on the "billing_frequency" field.
func BillingFrequencyNEQ(v string) predicate.Service {
	return predicate.Service(sql.FieldNEQ(FieldBillingFrequency, v))
}

// BillingFrequencyIn applies the In predicate on the "billing_frequency" field.
func BillingFrequencyIn(vs ...string) predicate.Service {
	return predicate.Service(sql.FieldIn(FieldBillingFrequency, vs...))
}

// BillingFrequencyNotIn applies the NotIn predicate on the "billing_frequency" field.
func BillingFrequencyNotIn(vs ...string) predicate.Service {
	return predicate.Service(sql.FieldNotIn(FieldBillingFrequency, vs...))
}

// BillingFrequencyGT applies the GT predicate on the "billing_frequency" field.
func BillingFrequencyGT(v string) predicate.Service {
	return predicate.Service(sql.FieldGT(FieldBillingFrequency, v))
}

// BillingFrequencyGTE applies the GTE predicate on the "billing_frequency" field.
func BillingFrequencyGTE(v string) predicate.Service {
	return predicate.Service(sql.FieldGTE(FieldBillingFrequency, v))
}

// BillingFrequencyLT applies the LT predicate on the "billing_frequency" field.
func BillingFrequencyLT(v string) predicate.Service {
	return predicate.Service(sql.FieldLT(FieldBillingFrequency, v))
}

// BillingFrequencyLTE applies the LTE predicate on the "billing_frequency" field.
func BillingFrequencyLTE(v string) predicate.Service {
	return predicate.Service(sql.FieldLTE(FieldBillingFrequency, v))
}

// BillingFrequencyContains applies the Contains predicate on the "billing_frequency" field.
func BillingFrequencyContains(v string) predicate.Service {
	return predicate.Service(sql.FieldContains(FieldBillingFrequency, v))
}

// BillingFrequencyHasPrefix applies the HasPrefix predicate on the "billing_frequency" field.
func BillingFrequencyHasPrefix(v string) predicate.Service {
	return predicate.Service(sql.FieldHasPrefix(FieldBillingFrequency, v))
}

// BillingFrequencyHasSuffix applies the HasSuffix predicate on the "billing_frequency" field.
func BillingFrequencyHasSuffix(v string) predicate.Service {
	return predicate.Service(sql.FieldHasSuffix(FieldBillingFrequency, v))
}

// BillingFrequencyIsNil applies the IsNil predicate on the "billing_frequency" field.
func BillingFrequencyIsNil() predicate.Service {
	return predicate.Service(sql.FieldIsNull(FieldBillingFrequency))
}

// BillingFrequencyNotNil applies the NotNil predicate on the "billing_frequency" field.
func BillingFrequencyNotNil() predicate.Service {
	return predicate.Service(sql.FieldNotNull(FieldBillingFrequency))
}

// BillingFrequencyEqualFold applies the EqualFold predicate on the "billing_frequency" field.
func BillingFrequencyEqualFold(v string) predicate.Service {
	return predicate.Service(sql.FieldEqualFold(FieldBillingFrequency, v))
}

// BillingFrequencyContainsFold applies the ContainsFold predicate on the "billing_frequency" field.
func BillingFrequencyContainsFold(v string) predicate.Service {
	return predicate.Service(sql.FieldContainsFold(FieldBillingFrequency, v))
}

// ServiceStatusEQ applies the EQ predicate on the "service_status" field.
func ServiceStatusEQ(v string) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldServiceStatus, v))
}

// ServiceStatusNEQ applies the NEQ predicate on the "service_status" field.
func ServiceStatusNEQ(v string) predicate.Service {
	return predicate.Service(sql.FieldNEQ(FieldServiceStatus, v))
}

// ServiceStatusIn applies the In predicate on the "service_status" field.
func ServiceStatusIn(vs ...string) predicate.Service {
	return predicate.Service(sql.FieldIn(FieldServiceStatus, vs...))
}

// ServiceStatusNotIn applies the NotIn predicate on the "service_status" field.
func ServiceStatusNotIn(vs ...string) predicate.Service {
	return predicate.Service(sql.FieldNotIn(FieldServiceStatus, vs...))
}

// ServiceStatusGT applies the GT predicate on the "service_status" field.
func ServiceStatusGT(v string) predicate.Service {
	return predicate.Service(sql.FieldGT(FieldServiceStatus, v))
}

// ServiceStatusGTE applies the GTE predicate on the "service_status" field.
func ServiceStatusGTE(v string) predicate.Service {
	return predicate.Service(sql.FieldGTE(FieldServiceStatus, v))
}

// ServiceStatusLT applies the LT predicate on the "service_status" field.
func ServiceStatusLT(v string) predicate.Service {
	return predicate.Service(sql.FieldLT(FieldServiceStatus, v))
}

// ServiceStatusLTE applies the LTE predicate on the "service_status" field.
func ServiceStatusLTE(v string) predicate.Service {
	return predicate.Service(sql.FieldLTE(FieldServiceStatus, v))
}

// ServiceStatusContains applies the Contains predicate on the "service_status" field.
func ServiceStatusContains(v string) predicate.Service {
	return predicate.Service(sql.FieldContains(FieldServiceStatus, v))
}

// ServiceStatusHasPrefix applies the HasPrefix predicate on the "service_status" field.
func ServiceStatusHasPrefix(v string) predicate.Service {
	return predicate.Service(sql.FieldHasPrefix(FieldServiceStatus, v))
}

// ServiceStatusHasSuffix applies the HasSuffix predicate on the "service_status" field.
func ServiceStatusHasSuffix(v string) predicate.Service {
	return predicate.Service(sql.FieldHasSuffix(FieldServiceStatus, v))
}

// ServiceStatusEqualFold applies the EqualFold predicate on the "service_status" field.
func ServiceStatusEqualFold(v string) predicate.Service {
	return predicate.Service(sql.FieldEqualFold(FieldServiceStatus, v))
}

// ServiceStatusContainsFold applies the ContainsFold predicate on the "service_status" field.
func ServiceStatusContainsFold(v string) predicate.Service {
	return predicate.Service(sql.FieldContainsFold(FieldServiceStatus, v))
}

// NextBillingDateEQ applies the EQ predicate on the "next_billing_date" field.
func NextBillingDateEQ(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldNextBillingDate, v))
}

// NextBillingDateNEQ applies the NEQ predicate on the "next_billing_date" field.
func NextBillingDateNEQ(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldNEQ(FieldNextBillingDate, v))
}

// NextBillingDateIn applies the In predicate on the "next_billing_date" field.
func NextBillingDateIn(vs ...time.Time) predicate.Service {
	return predicate.Service(sql.FieldIn(FieldNextBillingDate, vs...))
}

// NextBillingDateNotIn applies the NotIn predicate on the "next_billing_date" field.
func NextBillingDateNotIn(vs ...time.Time) predicate.Service {
	return predicate.Service(sql.FieldNotIn(FieldNextBillingDate, vs...))
}

// NextBillingDateGT applies the GT predicate on the "next_billing_date" field.
func NextBillingDateGT(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldGT(FieldNextBillingDate, v))
}

// NextBillingDateGTE applies the GTE predicate on the "next_billing_date" field.
func NextBillingDateGTE(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldGTE(FieldNextBillingDate, v))
}

// NextBillingDateLT applies the LT predicate on the "next_billing_date" field.
func NextBillingDateLT(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldLT(FieldNextBillingDate, v))
}

// NextBillingDateLTE applies the LTE predicate on the "next_billing_date" field.
func NextBillingDateLTE(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldLTE(FieldNextBillingDate, v))
}

// NextBillingDateIsNil applies the IsNil predicate on the "next_billing_date" field.
func NextBillingDateIsNil() predicate.Service {
	return predicate.Service(sql.FieldIsNull(FieldNextBillingDate))
}

// NextBillingDateNotNil applies the NotNil predicate on the "next_billing_date" field.
func NextBillingDateNotNil() predicate.Service {
	return predicate.Service(sql.FieldNotNull(FieldNextBillingDate))
}

// ActivatedAtEQ applies the EQ predicate on the "activated_at" field.
func ActivatedAtEQ(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldEQ(FieldActivatedAt, v))
}

// ActivatedAtNEQ applies the NEQ predicate on the "activated_at" field.
func ActivatedAtNEQ(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldNEQ(FieldActivatedAt, v))
}

// ActivatedAtIn applies the In predicate on the "activated_at" field.
func ActivatedAtIn(vs ...time.Time) predicate.Service {
	return predicate.Service(sql.FieldIn(FieldActivatedAt, vs...))
}

// ActivatedAtNotIn applies the NotIn predicate on the "activated_at" field.
func ActivatedAtNotIn(vs ...time.Time) predicate.Service {
	return predicate.Service(sql.FieldNotIn(FieldActivatedAt, vs...))
}

// ActivatedAtGT applies the GT predicate on the "activated_at" field.
func ActivatedAtGT(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldGT(FieldActivatedAt, v))
}

// ActivatedAtGTE applies the GTE predicate on the "activated_at" field.
func ActivatedAtGTE(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldGTE(FieldActivatedAt, v))
}

// ActivatedAtLT applies the LT predicate on the "activated_at" field.
func ActivatedAtLT(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldLT(FieldActivatedAt, v))
}

// ActivatedAtLTE applies the LTE predicate on the "activated_at" field.
func ActivatedAtLTE(v time.Time) predicate.Service {
	return predicate.Service(sql.FieldLTE(FieldActivatedAt, v))
}

// ActivatedAtIsNil applies the IsNil predicate on the "activated_at" field.
func ActivatedAtIsNil() predicate.Service {
	return predicate.Service(sql.FieldIsNull(FieldActivatedAt))
}

// ActivatedAtNotNil applies the NotNil predicate on the "activated_at" field.
func ActivatedAtNotNil() predicate.Service {
	return predicate.Service(sql.FieldNotNull(FieldActivatedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Service) predicate.Service {
	return predicate.Service(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Service) predicate.Service {
	return predicate.Service(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Service) predicate.Service {
	return predicate.Service(sql.NotPredicates(p))
}
