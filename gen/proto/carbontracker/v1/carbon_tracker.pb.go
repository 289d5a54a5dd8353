// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: carbontracker/v1/carbon_tracker.proto

package carbontrackerv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Profile struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Region        string                 `protobuf:"bytes,3,opt,name=region,proto3" json:"region,omitempty"` // ISO 3166-1 alpha-2, selects the emission-factor set
	CreatedAt     string                 `protobuf:"bytes,4,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,5,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Profile) Reset() {
	*x = Profile{}
	mi := &file_carbontracker_v1_carbon_tracker_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Profile) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Profile) ProtoMessage() {}

func (x *Profile) ProtoReflect() protoreflect.Message {
	mi := &file_carbontracker_v1_carbon_tracker_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Profile.ProtoReflect.Descriptor instead.
func (*Profile) Descriptor() ([]byte, []int) {
	return file_carbontracker_v1_carbon_tracker_proto_rawDescGZIP(), []int{0}
}

func (x *Profile) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Profile) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Profile) GetRegion() string {
	if x != nil {
		return x.Region
	}
	return ""
}

func (x *Profile) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Profile) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type UtilityBill struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Id                string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ProfileId         string                 `protobuf:"bytes,2,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	PeriodStart       string                 `protobuf:"bytes,3,opt,name=period_start,json=periodStart,proto3" json:"period_start,omitempty"`                        // YYYY-MM-DD, empty when unknown
	PeriodEnd         string                 `protobuf:"bytes,4,opt,name=period_end,json=periodEnd,proto3" json:"period_end,omitempty"`                              // YYYY-MM-DD, empty when unknown
	ElectricityUsage  *float64               `protobuf:"fixed64,5,opt,name=electricity_usage,json=electricityUsage,proto3,oneof" json:"electricity_usage,omitempty"` // kWh
	WaterUsage        *float64               `protobuf:"fixed64,6,opt,name=water_usage,json=waterUsage,proto3,oneof" json:"water_usage,omitempty"`                   // m³
	GasUsage          *float64               `protobuf:"fixed64,7,opt,name=gas_usage,json=gasUsage,proto3,oneof" json:"gas_usage,omitempty"`                         // kWh
	ElectricityCarbon float64                `protobuf:"fixed64,8,opt,name=electricity_carbon,json=electricityCarbon,proto3" json:"electricity_carbon,omitempty"`    // kg CO₂e
	WaterCarbon       float64                `protobuf:"fixed64,9,opt,name=water_carbon,json=waterCarbon,proto3" json:"water_carbon,omitempty"`
	GasCarbon         float64                `protobuf:"fixed64,10,opt,name=gas_carbon,json=gasCarbon,proto3" json:"gas_carbon,omitempty"`
	TotalCarbon       float64                `protobuf:"fixed64,11,opt,name=total_carbon,json=totalCarbon,proto3" json:"total_carbon,omitempty"`
	InputMethod       string                 `protobuf:"bytes,12,opt,name=input_method,json=inputMethod,proto3" json:"input_method,omitempty"` // AUTO | MANUAL
	OcrConfidence     *float32               `protobuf:"fixed32,13,opt,name=ocr_confidence,json=ocrConfidence,proto3,oneof" json:"ocr_confidence,omitempty"`
	Notes             string                 `protobuf:"bytes,14,opt,name=notes,proto3" json:"notes,omitempty"`
	CreatedAt         string                 `protobuf:"bytes,15,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt         string                 `protobuf:"bytes,16,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *UtilityBill) Reset() {
	*x = UtilityBill{}
	mi := &file_carbontracker_v1_carbon_tracker_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UtilityBill) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UtilityBill) ProtoMessage() {}

func (x *UtilityBill) ProtoReflect() protoreflect.Message {
	mi := &file_carbontracker_v1_carbon_tracker_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UtilityBill.ProtoReflect.Descriptor instead.
func (*UtilityBill) Descriptor() ([]byte, []int) {
	return file_carbontracker_v1_carbon_tracker_proto_rawDescGZIP(), []int{1}
}

func (x *UtilityBill) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UtilityBill) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *UtilityBill) GetPeriodStart() string {
	if x != nil {
		return x.PeriodStart
	}
	return ""
}

func (x *UtilityBill) GetPeriodEnd() string {
	if x != nil {
		return x.PeriodEnd
	}
	return ""
}

func (x *UtilityBill) GetElectricityUsage() float64 {
	if x != nil && x.ElectricityUsage != nil {
		return *x.ElectricityUsage
	}
	return 0
}

func (x *UtilityBill) GetWaterUsage() float64 {
	if x != nil && x.WaterUsage != nil {
		return *x.WaterUsage
	}
	return 0
}

func (x *UtilityBill) GetGasUsage() float64 {
	if x != nil && x.GasUsage != nil {
		return *x.GasUsage
	}
	return 0
}

func (x *UtilityBill) GetElectricityCarbon() float64 {
	if x != nil {
		return x.ElectricityCarbon
	}
	return 0
}

func (x *UtilityBill) GetWaterCarbon() float64 {
	if x != nil {
		return x.WaterCarbon
	}
	return 0
}

func (x *UtilityBill) GetGasCarbon() float64 {
	if x != nil {
		return x.GasCarbon
	}
	return 0
}

func (x *UtilityBill) GetTotalCarbon() float64 {
	if x != nil {
		return x.TotalCarbon
	}
	return 0
}

func (x *UtilityBill) GetInputMethod() string {
	if x != nil {
		return x.InputMethod
	}
	return ""
}

func (x *UtilityBill) GetOcrConfidence() float32 {
	if x != nil && x.OcrConfidence != nil {
		return *x.OcrConfidence
	}
	return 0
}

func (x *UtilityBill) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

func (x *UtilityBill) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *UtilityBill) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ScanBillRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	Image         []byte                 `protobuf:"bytes,2,opt,name=image,proto3" json:"image,omitempty"` // raw image bytes, <= 20 MiB
	Notes         string                 `protobuf:"bytes,3,opt,name=notes,proto3" json:"notes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScanBillRequest) Reset() {
	*x = ScanBillRequest{}
	mi := &file_carbontracker_v1_carbon_tracker_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanBillRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanBillRequest) ProtoMessage() {}

func (x *ScanBillRequest) ProtoReflect() protoreflect.Message {
	mi := &file_carbontracker_v1_carbon_tracker_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanBillRequest.ProtoReflect.Descriptor instead.
func (*ScanBillRequest) Descriptor() ([]byte, []int) {
	return file_carbontracker_v1_carbon_tracker_proto_rawDescGZIP(), []int{2}
}

func (x *ScanBillRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *ScanBillRequest) GetImage() []byte {
	if x != nil {
		return x.Image
	}
	return nil
}

func (x *ScanBillRequest) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

type ScanBillResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Bill          *UtilityBill           `protobuf:"bytes,1,opt,name=bill,proto3" json:"bill,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScanBillResponse) Reset() {
	*x = ScanBillResponse{}
	mi := &file_carbontracker_v1_carbon_tracker_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanBillResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanBillResponse) ProtoMessage() {}

func (x *ScanBillResponse) ProtoReflect() protoreflect.Message {
	mi := &file_carbontracker_v1_carbon_tracker_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanBillResponse.ProtoReflect.Descriptor instead.
func (*ScanBillResponse) Descriptor() ([]byte, []int) {
	return file_carbontracker_v1_carbon_tracker_proto_rawDescGZIP(), []int{3}
}

func (x *ScanBillResponse) GetBill() *UtilityBill {
	if x != nil {
		return x.Bill
	}
	return nil
}

type CreateManualBillRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	ProfileId        string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	PeriodStart      string                 `protobuf:"bytes,2,opt,name=period_start,json=periodStart,proto3" json:"period_start,omitempty"` // YYYY-MM-DD, optional
	PeriodEnd        string                 `protobuf:"bytes,3,opt,name=period_end,json=periodEnd,proto3" json:"period_end,omitempty"`       // YYYY-MM-DD, optional
	ElectricityUsage *float64               `protobuf:"fixed64,4,opt,name=electricity_usage,json=electricityUsage,proto3,oneof" json:"electricity_usage,omitempty"`
	WaterUsage       *float64               `protobuf:"fixed64,5,opt,name=water_usage,json=waterUsage,proto3,oneof" json:"water_usage,omitempty"`
	GasUsage         *float64               `protobuf:"fixed64,6,opt,name=gas_usage,json=gasUsage,proto3,oneof" json:"gas_usage,omitempty"`
	Notes            string                 `protobuf:"bytes,7,opt,name=notes,proto3" json:"notes,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *CreateManualBillRequest) Reset() {
	*x = CreateManualBillRequest{}
	mi := &file_carbontracker_v1_carbon_tracker_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateManualBillRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateManualBillRequest) ProtoMessage() {}

func (x *CreateManualBillRequest) ProtoReflect() protoreflect.Message {
	mi := &file_carbontracker_v1_carbon_tracker_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateManualBillRequest.ProtoReflect.Descriptor instead.
func (*CreateManualBillRequest) Descriptor() ([]byte, []int) {
	return file_carbontracker_v1_carbon_tracker_proto_rawDescGZIP(), []int{4}
}

func (x *CreateManualBillRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *CreateManualBillRequest) GetPeriodStart() string {
	if x != nil {
		return x.PeriodStart
	}
	return ""
}

func (x *CreateManualBillRequest) GetPeriodEnd() string {
	if x != nil {
		return x.PeriodEnd
	}
	return ""
}

func (x *CreateManualBillRequest) GetElectricityUsage() float64 {
	if x != nil && x.ElectricityUsage != nil {
		return *x.ElectricityUsage
	}
	return 0
}

func (x *CreateManualBillRequest) GetWaterUsage() float64 {
	if x != nil && x.WaterUsage != nil {
		return *x.WaterUsage
	}
	return 0
}

func (x *CreateManualBillRequest) GetGasUsage() float64 {
	if x != nil && x.GasUsage != nil {
		return *x.GasUsage
	}
	return 0
}

func (x *CreateManualBillRequest) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

type CreateManualBillResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Bill          *UtilityBill           `protobuf:"bytes,1,opt,name=bill,proto3" json:"bill,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateManualBillResponse) Reset() {
	*x = CreateManualBillResponse{}
	mi := &file_carbontracker_v1_carbon_tracker_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateManualBillResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateManualBillResponse) ProtoMessage() {}

func (x *CreateManualBillResponse) ProtoReflect() protoreflect.Message {
	mi := &file_carbontracker_v1_carbon_tracker_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateManualBillResponse.ProtoReflect.Descriptor instead.
func (*CreateManualBillResponse) Descriptor() ([]byte, []int) {
	return file_carbontracker_v1_carbon_tracker_proto_rawDescGZIP(), []int{5}
}

func (x *CreateManualBillResponse) GetBill() *UtilityBill {
	if x != nil {
		return x.Bill
	}
	return nil
}

type GetBillRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	BillId        string                 `protobuf:"bytes,2,opt,name=bill_id,json=billId,proto3" json:"bill_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBillRequest) Reset() {
	*x = GetBillRequest{}
	mi := &file_carbontracker_v1_carbon_tracker_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBillRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBillRequest) ProtoMessage() {}

func (x *GetBillRequest) ProtoReflect() protoreflect.Message {
	mi := &file_carbontracker_v1_carbon_tracker_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBillRequest.ProtoReflect.Descriptor instead.
func (*GetBillRequest) Descriptor() ([]byte, []int) {
	return file_carbontracker_v1_carbon_tracker_proto_rawDescGZIP(), []int{6}
}

func (x *GetBillRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *GetBillRequest) GetBillId() string {
	if x != nil {
		return x.BillId
	}
	return ""
}

type GetBillResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Bill          *UtilityBill           `protobuf:"bytes,1,opt,name=bill,proto3" json:"bill,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBillResponse) Reset() {
	*x = GetBillResponse{}
	mi := &file_carbontracker_v1_carbon_tracker_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBillResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBillResponse) ProtoMessage() {}

func (x *GetBillResponse) ProtoReflect() protoreflect.Message {
	mi := &file_carbontracker_v1_carbon_tracker_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBillResponse.ProtoReflect.Descriptor instead.
func (*GetBillResponse) Descriptor() ([]byte, []int) {
	return file_carbontracker_v1_carbon_tracker_proto_rawDescGZIP(), []int{7}
}

func (x *GetBillResponse) GetBill() *UtilityBill {
	if x != nil {
		return x.Bill
	}
	return nil
}

type ListBillsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListBillsRequest) Reset() {
	*x = ListBillsRequest{}
	mi := &file_carbontracker_v1_carbon_tracker_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListBillsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBillsRequest) ProtoMessage() {}

func (x *ListBillsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_carbontracker_v1_carbon_tracker_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListBillsRequest.ProtoReflect.Descriptor instead.
func (*ListBillsRequest) Descriptor() ([]byte, []int) {
	return file_carbontracker_v1_carbon_tracker_proto_rawDescGZIP(), []int{8}
}

func (x *ListBillsRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *ListBillsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListBillsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListBillsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Bills         []*UtilityBill         `protobuf:"bytes,1,rep,name=bills,proto3" json:"bills,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListBillsResponse) Reset() {
	*x = ListBillsResponse{}
	mi := &file_carbontracker_v1_carbon_tracker_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListBillsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBillsResponse) ProtoMessage() {}

func (x *ListBillsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_carbontracker_v1_carbon_tracker_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListBillsResponse.ProtoReflect.Descriptor instead.
func (*ListBillsResponse) Descriptor() ([]byte, []int) {
	return file_carbontracker_v1_carbon_tracker_proto_rawDescGZIP(), []int{9}
}

func (x *ListBillsResponse) GetBills() []*UtilityBill {
	if x != nil {
		return x.Bills
	}
	return nil
}

type DeleteBillRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	BillId        string                 `protobuf:"bytes,2,opt,name=bill_id,json=billId,proto3" json:"bill_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteBillRequest) Reset() {
	*x = DeleteBillRequest{}
	mi := &file_carbontracker_v1_carbon_tracker_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteBillRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteBillRequest) ProtoMessage() {}

func (x *DeleteBillRequest) ProtoReflect() protoreflect.Message {
	mi := &file_carbontracker_v1_carbon_tracker_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteBillRequest.ProtoReflect.Descriptor instead.
func (*DeleteBillRequest) Descriptor() ([]byte, []int) {
	return file_carbontracker_v1_carbon_tracker_proto_rawDescGZIP(), []int{10}
}

func (x *DeleteBillRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *DeleteBillRequest) GetBillId() string {
	if x != nil {
		return x.BillId
	}
	return ""
}

type DeleteBillResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteBillResponse) Reset() {
	*x = DeleteBillResponse{}
	mi := &file_carbontracker_v1_carbon_tracker_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteBillResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteBillResponse) ProtoMessage() {}

func (x *DeleteBillResponse) ProtoReflect() protoreflect.Message {
	mi := &file_carbontracker_v1_carbon_tracker_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteBillResponse.ProtoReflect.Descriptor instead.
func (*DeleteBillResponse) Descriptor() ([]byte, []int) {
	return file_carbontracker_v1_carbon_tracker_proto_rawDescGZIP(), []int{11}
}

type ExportBillsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportBillsRequest) Reset() {
	*x = ExportBillsRequest{}
	mi := &file_carbontracker_v1_carbon_tracker_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportBillsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportBillsRequest) ProtoMessage() {}

func (x *ExportBillsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_carbontracker_v1_carbon_tracker_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportBillsRequest.ProtoReflect.Descriptor instead.
func (*ExportBillsRequest) Descriptor() ([]byte, []int) {
	return file_carbontracker_v1_carbon_tracker_proto_rawDescGZIP(), []int{12}
}

func (x *ExportBillsRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *ExportBillsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportBillsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportBillsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportBillsResponse) Reset() {
	*x = ExportBillsResponse{}
	mi := &file_carbontracker_v1_carbon_tracker_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportBillsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportBillsResponse) ProtoMessage() {}

func (x *ExportBillsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_carbontracker_v1_carbon_tracker_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportBillsResponse.ProtoReflect.Descriptor instead.
func (*ExportBillsResponse) Descriptor() ([]byte, []int) {
	return file_carbontracker_v1_carbon_tracker_proto_rawDescGZIP(), []int{13}
}

func (x *ExportBillsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportBillsResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

type CreateProfileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Region        string                 `protobuf:"bytes,2,opt,name=region,proto3" json:"region,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateProfileRequest) Reset() {
	*x = CreateProfileRequest{}
	mi := &file_carbontracker_v1_carbon_tracker_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProfileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProfileRequest) ProtoMessage() {}

func (x *CreateProfileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_carbontracker_v1_carbon_tracker_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProfileRequest.ProtoReflect.Descriptor instead.
func (*CreateProfileRequest) Descriptor() ([]byte, []int) {
	return file_carbontracker_v1_carbon_tracker_proto_rawDescGZIP(), []int{14}
}

func (x *CreateProfileRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateProfileRequest) GetRegion() string {
	if x != nil {
		return x.Region
	}
	return ""
}

type CreateProfileResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Profile       *Profile               `protobuf:"bytes,1,opt,name=profile,proto3" json:"profile,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateProfileResponse) Reset() {
	*x = CreateProfileResponse{}
	mi := &file_carbontracker_v1_carbon_tracker_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProfileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProfileResponse) ProtoMessage() {}

func (x *CreateProfileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_carbontracker_v1_carbon_tracker_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProfileResponse.ProtoReflect.Descriptor instead.
func (*CreateProfileResponse) Descriptor() ([]byte, []int) {
	return file_carbontracker_v1_carbon_tracker_proto_rawDescGZIP(), []int{15}
}

func (x *CreateProfileResponse) GetProfile() *Profile {
	if x != nil {
		return x.Profile
	}
	return nil
}

type ListProfilesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProfilesRequest) Reset() {
	*x = ListProfilesRequest{}
	mi := &file_carbontracker_v1_carbon_tracker_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProfilesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProfilesRequest) ProtoMessage() {}

func (x *ListProfilesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_carbontracker_v1_carbon_tracker_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProfilesRequest.ProtoReflect.Descriptor instead.
func (*ListProfilesRequest) Descriptor() ([]byte, []int) {
	return file_carbontracker_v1_carbon_tracker_proto_rawDescGZIP(), []int{16}
}

type ListProfilesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Profiles      []*Profile             `protobuf:"bytes,1,rep,name=profiles,proto3" json:"profiles,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProfilesResponse) Reset() {
	*x = ListProfilesResponse{}
	mi := &file_carbontracker_v1_carbon_tracker_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProfilesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProfilesResponse) ProtoMessage() {}

func (x *ListProfilesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_carbontracker_v1_carbon_tracker_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProfilesResponse.ProtoReflect.Descriptor instead.
func (*ListProfilesResponse) Descriptor() ([]byte, []int) {
	return file_carbontracker_v1_carbon_tracker_proto_rawDescGZIP(), []int{17}
}

func (x *ListProfilesResponse) GetProfiles() []*Profile {
	if x != nil {
		return x.Profiles
	}
	return nil
}

var File_carbontracker_v1_carbon_tracker_proto protoreflect.FileDescriptor

const file_carbontracker_v1_carbon_tracker_proto_rawDesc = "" +
	"\n" +
	"%carbontracker/v1/carbon_tracker.proto\x12\x10carbontracker.v1\"\x83\x01\n" +
	"\aProfile\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x16\n" +
	"\x06region\x18\x03 \x01(\tR\x06region\x12\x1d\n" +
	"\n" +
	"created_at\x18\x04 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x05 \x01(\tR\tupdatedAt\"\xf6\x04\n" +
	"\vUtilityBill\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x02 \x01(\tR\tprofileId\x12!\n" +
	"\fperiod_start\x18\x03 \x01(\tR\vperiodStart\x12\x1d\n" +
	"\n" +
	"period_end\x18\x04 \x01(\tR\tperiodEnd\x120\n" +
	"\x11electricity_usage\x18\x05 \x01(\x01H\x00R\x10electricityUsage\x88\x01\x01\x12$\n" +
	"\vwater_usage\x18\x06 \x01(\x01H\x01R\n" +
	"waterUsage\x88\x01\x01\x12 \n" +
	"\tgas_usage\x18\a \x01(\x01H\x02R\bgasUsage\x88\x01\x01\x12-\n" +
	"\x12electricity_carbon\x18\b \x01(\x01R\x11electricityCarbon\x12!\n" +
	"\fwater_carbon\x18\t \x01(\x01R\vwaterCarbon\x12\x1d\n" +
	"\n" +
	"gas_carbon\x18\n" +
	" \x01(\x01R\tgasCarbon\x12!\n" +
	"\ftotal_carbon\x18\v \x01(\x01R\vtotalCarbon\x12!\n" +
	"\finput_method\x18\f \x01(\tR\vinputMethod\x12*\n" +
	"\x0eocr_confidence\x18\r \x01(\x02H\x03R\rocrConfidence\x88\x01\x01\x12\x14\n" +
	"\x05notes\x18\x0e \x01(\tR\x05notes\x12\x1d\n" +
	"\n" +
	"created_at\x18\x0f \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x10 \x01(\tR\tupdatedAtB\x14\n" +
	"\x12_electricity_usageB\x0e\n" +
	"\f_water_usageB\f\n" +
	"\n" +
	"_gas_usageB\x11\n" +
	"\x0f_ocr_confidence\"\\\n" +
	"\x0fScanBillRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x14\n" +
	"\x05image\x18\x02 \x01(\fR\x05image\x12\x14\n" +
	"\x05notes\x18\x03 \x01(\tR\x05notes\"E\n" +
	"\x10ScanBillResponse\x121\n" +
	"\x04bill\x18\x01 \x01(\v2\x1d.carbontracker.v1.UtilityBillR\x04bill\"\xbe\x02\n" +
	"\x17CreateManualBillRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12!\n" +
	"\fperiod_start\x18\x02 \x01(\tR\vperiodStart\x12\x1d\n" +
	"\n" +
	"period_end\x18\x03 \x01(\tR\tperiodEnd\x120\n" +
	"\x11electricity_usage\x18\x04 \x01(\x01H\x00R\x10electricityUsage\x88\x01\x01\x12$\n" +
	"\vwater_usage\x18\x05 \x01(\x01H\x01R\n" +
	"waterUsage\x88\x01\x01\x12 \n" +
	"\tgas_usage\x18\x06 \x01(\x01H\x02R\bgasUsage\x88\x01\x01\x12\x14\n" +
	"\x05notes\x18\a \x01(\tR\x05notesB\x14\n" +
	"\x12_electricity_usageB\x0e\n" +
	"\f_water_usageB\f\n" +
	"\n" +
	"_gas_usage\"M\n" +
	"\x18CreateManualBillResponse\x121\n" +
	"\x04bill\x18\x01 \x01(\v2\x1d.carbontracker.v1.UtilityBillR\x04bill\"H\n" +
	"\x0eGetBillRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x17\n" +
	"\abill_id\x18\x02 \x01(\tR\x06billId\"D\n" +
	"\x0fGetBillResponse\x121\n" +
	"\x04bill\x18\x01 \x01(\v2\x1d.carbontracker.v1.UtilityBillR\x04bill\"g\n" +
	"\x10ListBillsRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"H\n" +
	"\x11ListBillsResponse\x123\n" +
	"\x05bills\x18\x01 \x03(\v2\x1d.carbontracker.v1.UtilityBillR\x05bills\"K\n" +
	"\x11DeleteBillRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x17\n" +
	"\abill_id\x18\x02 \x01(\tR\x06billId\"\x14\n" +
	"\x12DeleteBillResponse\"i\n" +
	"\x12ExportBillsRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"E\n" +
	"\x13ExportBillsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\"B\n" +
	"\x14CreateProfileRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x16\n" +
	"\x06region\x18\x02 \x01(\tR\x06region\"L\n" +
	"\x15CreateProfileResponse\x123\n" +
	"\aprofile\x18\x01 \x01(\v2\x19.carbontracker.v1.ProfileR\aprofile\"\x15\n" +
	"\x13ListProfilesRequest\"M\n" +
	"\x14ListProfilesResponse\x125\n" +
	"\bprofiles\x18\x01 \x03(\v2\x19.carbontracker.v1.ProfileR\bprofiles2\xaf\x04\n" +
	"\x14CarbonTrackerService\x12Q\n" +
	"\bScanBill\x12!.carbontracker.v1.ScanBillRequest\x1a\".carbontracker.v1.ScanBillResponse\x12i\n" +
	"\x10CreateManualBill\x12).carbontracker.v1.CreateManualBillRequest\x1a*.carbontracker.v1.CreateManualBillResponse\x12N\n" +
	"\aGetBill\x12 .carbontracker.v1.GetBillRequest\x1a!.carbontracker.v1.GetBillResponse\x12T\n" +
	"\tListBills\x12\".carbontracker.v1.ListBillsRequest\x1a#.carbontracker.v1.ListBillsResponse\x12W\n" +
	"\n" +
	"DeleteBill\x12#.carbontracker.v1.DeleteBillRequest\x1a$.carbontracker.v1.DeleteBillResponse\x12Z\n" +
	"\vExportBills\x12$.carbontracker.v1.ExportBillsRequest\x1a%.carbontracker.v1.ExportBillsResponse2\xd2\x01\n" +
	"\x0fProfilesService\x12`\n" +
	"\rCreateProfile\x12&.carbontracker.v1.CreateProfileRequest\x1a'.carbontracker.v1.CreateProfileResponse\x12]\n" +
	"\fListProfiles\x12%.carbontracker.v1.ListProfilesRequest\x1a&.carbontracker.v1.ListProfilesResponseBSZQgithub.com/ecotrack-app/carbon-tracker/gen/proto/carbontracker/v1;carbontrackerv1b\x06proto3"

var (
	file_carbontracker_v1_carbon_tracker_proto_rawDescOnce sync.Once
	file_carbontracker_v1_carbon_tracker_proto_rawDescData []byte
)

func file_carbontracker_v1_carbon_tracker_proto_rawDescGZIP() []byte {
	file_carbontracker_v1_carbon_tracker_proto_rawDescOnce.Do(func() {
		file_carbontracker_v1_carbon_tracker_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_carbontracker_v1_carbon_tracker_proto_rawDesc), len(file_carbontracker_v1_carbon_tracker_proto_rawDesc)))
	})
	return file_carbontracker_v1_carbon_tracker_proto_rawDescData
}

var file_carbontracker_v1_carbon_tracker_proto_msgTypes = make([]protoimpl.MessageInfo, 18)
var file_carbontracker_v1_carbon_tracker_proto_goTypes = []any{
	(*Profile)(nil),                  // 0: carbontracker.v1.Profile
	(*UtilityBill)(nil),              // 1: carbontracker.v1.UtilityBill
	(*ScanBillRequest)(nil),          // 2: carbontracker.v1.ScanBillRequest
	(*ScanBillResponse)(nil),         // 3: carbontracker.v1.ScanBillResponse
	(*CreateManualBillRequest)(nil),  // 4: carbontracker.v1.CreateManualBillRequest
	(*CreateManualBillResponse)(nil), // 5: carbontracker.v1.CreateManualBillResponse
	(*GetBillRequest)(nil),           // 6: carbontracker.v1.GetBillRequest
	(*GetBillResponse)(nil),          // 7: carbontracker.v1.GetBillResponse
	(*ListBillsRequest)(nil),         // 8: carbontracker.v1.ListBillsRequest
	(*ListBillsResponse)(nil),        // 9: carbontracker.v1.ListBillsResponse
	(*DeleteBillRequest)(nil),        // 10: carbontracker.v1.DeleteBillRequest
	(*DeleteBillResponse)(nil),       // 11: carbontracker.v1.DeleteBillResponse
	(*ExportBillsRequest)(nil),       // 12: carbontracker.v1.ExportBillsRequest
	(*ExportBillsResponse)(nil),      // 13: carbontracker.v1.ExportBillsResponse
	(*CreateProfileRequest)(nil),     // 14: carbontracker.v1.CreateProfileRequest
	(*CreateProfileResponse)(nil),    // 15: carbontracker.v1.CreateProfileResponse
	(*ListProfilesRequest)(nil),      // 16: carbontracker.v1.ListProfilesRequest
	(*ListProfilesResponse)(nil),     // 17: carbontracker.v1.ListProfilesResponse
}
var file_carbontracker_v1_carbon_tracker_proto_depIdxs = []int32{
	1,  // 0: carbontracker.v1.ScanBillResponse.bill:type_name -> carbontracker.v1.UtilityBill
	1,  // 1: carbontracker.v1.CreateManualBillResponse.bill:type_name -> carbontracker.v1.UtilityBill
	1,  // 2: carbontracker.v1.GetBillResponse.bill:type_name -> carbontracker.v1.UtilityBill
	1,  // 3: carbontracker.v1.ListBillsResponse.bills:type_name -> carbontracker.v1.UtilityBill
	0,  // 4: carbontracker.v1.CreateProfileResponse.profile:type_name -> carbontracker.v1.Profile
	0,  // 5: carbontracker.v1.ListProfilesResponse.profiles:type_name -> carbontracker.v1.Profile
	2,  // 6: carbontracker.v1.CarbonTrackerService.ScanBill:input_type -> carbontracker.v1.ScanBillRequest
	4,  // 7: carbontracker.v1.CarbonTrackerService.CreateManualBill:input_type -> carbontracker.v1.CreateManualBillRequest
	6,  // 8: carbontracker.v1.CarbonTrackerService.GetBill:input_type -> carbontracker.v1.GetBillRequest
	8,  // 9: carbontracker.v1.CarbonTrackerService.ListBills:input_type -> carbontracker.v1.ListBillsRequest
	10, // 10: carbontracker.v1.CarbonTrackerService.DeleteBill:input_type -> carbontracker.v1.DeleteBillRequest
	12, // 11: carbontracker.v1.CarbonTrackerService.ExportBills:input_type -> carbontracker.v1.ExportBillsRequest
	14, // 12: carbontracker.v1.ProfilesService.CreateProfile:input_type -> carbontracker.v1.CreateProfileRequest
	16, // 13: carbontracker.v1.ProfilesService.ListProfiles:input_type -> carbontracker.v1.ListProfilesRequest
	3,  // 14: carbontracker.v1.CarbonTrackerService.ScanBill:output_type -> carbontracker.v1.ScanBillResponse
	5,  // 15: carbontracker.v1.CarbonTrackerService.CreateManualBill:output_type -> carbontracker.v1.CreateManualBillResponse
	7,  // 16: carbontracker.v1.CarbonTrackerService.GetBill:output_type -> carbontracker.v1.GetBillResponse
	9,  // 17: carbontracker.v1.CarbonTrackerService.ListBills:output_type -> carbontracker.v1.ListBillsResponse
	11, // 18: carbontracker.v1.CarbonTrackerService.DeleteBill:output_type -> carbontracker.v1.DeleteBillResponse
	13, // 19: carbontracker.v1.CarbonTrackerService.ExportBills:output_type -> carbontracker.v1.ExportBillsResponse
	15, // 20: carbontracker.v1.ProfilesService.CreateProfile:output_type -> carbontracker.v1.CreateProfileResponse
	17, // 21: carbontracker.v1.ProfilesService.ListProfiles:output_type -> carbontracker.v1.ListProfilesResponse
	14, // [14:22] is the sub-list for method output_type
	6,  // [6:14] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_carbontracker_v1_carbon_tracker_proto_init() }
func file_carbontracker_v1_carbon_tracker_proto_init() {
	if File_carbontracker_v1_carbon_tracker_proto != nil {
		return
	}
	file_carbontracker_v1_carbon_tracker_proto_msgTypes[1].OneofWrappers = []any{}
	file_carbontracker_v1_carbon_tracker_proto_msgTypes[4].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_carbontracker_v1_carbon_tracker_proto_rawDesc), len(file_carbontracker_v1_carbon_tracker_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   18,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_carbontracker_v1_carbon_tracker_proto_goTypes,
		DependencyIndexes: file_carbontracker_v1_carbon_tracker_proto_depIdxs,
		MessageInfos:      file_carbontracker_v1_carbon_tracker_proto_msgTypes,
	}.Build()
	File_carbontracker_v1_carbon_tracker_proto = out.File
	file_carbontracker_v1_carbon_tracker_proto_goTypes = nil
	file_carbontracker_v1_carbon_tracker_proto_depIdxs = nil
}
