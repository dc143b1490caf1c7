// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package console

// User-facing texts shared by every renderer. Failures are always reported
// with one of these static messages, never with the service error itself.
const (
	MsgLoadFailed   = "Error al cargar los frontends"
	MsgAddFailed    = "Error al añadir el frontend"
	MsgUpdateFailed = "Error al actualizar el frontend"
	MsgDeleteFailed = "Error al eliminar el frontend"

	MsgSelectAtLeastOneFile = "Por favor selecciona al menos un archivo"
	MsgUploadFailed         = "Ocurrió un error al subir los archivos"

	MsgLoading       = "Cargando frontends..."
	MsgEmpty         = "No hay frontends disponibles"
	MsgConfirmDelete = "¿Estás seguro de eliminar este frontend?"
)

// Labels and titles.
const (
	TitlePage   = "Gestión de Frontends"
	TitleAdd    = "Añadir nuevo frontend"
	TitleEdit   = "Editar frontend"
	TitleUpload = "Subir archivos para %s"

	LabelName       = "Nombre"
	LabelPath       = "Ruta"
	LabelActivation = "Estado de activación"
	LabelCreated    = "Creado"
	LabelSelected   = "Archivos seleccionados: %d"

	LabelActive   = "Activo"
	LabelInactive = "Inactivo"

	LabelAddFrontend = "Añadir Frontend"
	LabelCreate      = "Crear"
	LabelUpdate      = "Actualizar"
	LabelSubmitting  = "Enviando..."
	LabelCancel      = "Cancelar"
	LabelConfirm     = "Confirmar"
	LabelEdit        = "Editar"
	LabelDelete      = "Eliminar"
	LabelUpload      = "Subir archivos"
	LabelUploading   = "Subiendo..."
)

// createdDateLayout renders a creation date as day/month/year.
const createdDateLayout = "2/1/2006"
